package recipes

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	minTitleLen        = 5
	maxTitleLen        = 80
	fallbackPromptMax  = 50
	fallbackPromptKeep = 47
)

// titleMatcher extracts one candidate title from normalized content.
type titleMatcher struct {
	name    string
	pattern *regexp.Regexp
}

func (m titleMatcher) candidate(text string) (string, bool) {
	match := m.pattern.FindStringSubmatch(text)
	if len(match) < 2 || match[1] == "" {
		return "", false
	}
	return match[1], true
}

// ws is Unicode whitespace; RE2's \s alone is ASCII only.
const ws = `[\s\v\p{Z}\x{FEFF}]`

// titleMatchers are tried in order; the first accepted candidate wins.
var titleMatchers = []titleMatcher{
	{name: "label", pattern: regexp.MustCompile(`(?i)Recipe(?:` + ws + `+for)?:?` + ws + `*([^\n\r]+)`)},
	{name: "first_line", pattern: regexp.MustCompile(`^([^\n\r]{10,80})(?:\n|\r|$)`)},
	{name: "naming_phrase", pattern: regexp.MustCompile(`(?i)(?:dish|meal|recipe)` + ws + `+(?:is|called|named)` + ws + `+([^\n\r.,]{5,50})`)},
	{name: "imperative", pattern: regexp.MustCompile(`(?i)(?:make|prepare|cook)` + ws + `+(?:a|an|some)?` + ws + `*([^\n\r.,]{5,50})`)},
}

var (
	markupChars  = strings.NewReplacer("#", "", "*", "", "_", "", "`", "")
	whitespaceRE = regexp.MustCompile(ws + `+`)
	digitsOnlyRE = regexp.MustCompile(`^\d+$`)
)

func isTitleSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', '\uFEFF':
		return true
	}
	return unicode.In(r, unicode.Z)
}

func trimTitleSpace(s string) string {
	return strings.TrimFunc(s, isTitleSpace)
}

// DeriveTitle picks a presentable title out of generated text, falling back
// to one built from prompt. It always returns a non-empty string.
func DeriveTitle(content, prompt string) string {
	text := trimTitleSpace(markupChars.Replace(content))
	for _, m := range titleMatchers {
		raw, ok := m.candidate(text)
		if !ok {
			continue
		}
		if title, ok := acceptTitle(raw); ok {
			return title
		}
	}
	return FallbackTitle(prompt)
}

// FallbackTitle is the deterministic title used when nothing usable can be
// extracted from the content.
func FallbackTitle(prompt string) string {
	if utf8.RuneCountInString(prompt) > fallbackPromptMax {
		prompt = string([]rune(prompt)[:fallbackPromptKeep]) + "..."
	}
	return "Recipe for " + prompt
}

func acceptTitle(raw string) (string, bool) {
	title := trimTitleSpace(raw)
	title = stripTrailingPunct(title)
	title = trimTitleSpace(whitespaceRE.ReplaceAllString(title, " "))

	n := utf8.RuneCountInString(title)
	if n < minTitleLen || n > maxTitleLen {
		return "", false
	}
	if digitsOnlyRE.MatchString(title) {
		return "", false
	}
	return title, true
}

// stripTrailingPunct removes a single trailing . , ! ? ; or :.
func stripTrailingPunct(s string) string {
	if s == "" {
		return s
	}
	switch s[len(s)-1] {
	case '.', ',', '!', '?', ';', ':':
		return s[:len(s)-1]
	}
	return s
}
