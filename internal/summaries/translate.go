package summaries

import "strings"

// Translator turns summary text into the target language.
type Translator interface {
	Translate(text string) string
}

// urduWords is a fixed word list; unknown words pass through unchanged.
var urduWords = map[string]string{
	"blog":        "بلاگ",
	"post":        "تحریر",
	"summary":     "خلاصہ",
	"this":        "یہ",
	"is":          "ہے",
	"a":           "ایک",
	"sample":      "نمونہ",
	"from":        "سے",
	"important":   "اہم",
	"information": "معلومات",
	"about":       "کے بارے میں",
	"and":         "اور",
	"it":          "یہ",
	"contains":    "پر مشتمل",
	"topics":      "موضوعات",
}

// WordTranslator replaces whole space-separated words found in Words.
type WordTranslator struct {
	Words map[string]string
}

// NewUrduTranslator returns the stub word-for-word Urdu translator.
func NewUrduTranslator() WordTranslator {
	return WordTranslator{Words: urduWords}
}

// Translate looks each word up case-insensitively.
func (t WordTranslator) Translate(text string) string {
	words := strings.Split(text, " ")
	for i, w := range words {
		if tr, ok := t.Words[strings.ToLower(w)]; ok {
			words[i] = tr
		}
	}
	return strings.Join(words, " ")
}
