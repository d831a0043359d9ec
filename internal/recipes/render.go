package recipes

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Raw HTML in content is not passed through: the default renderer replaces it
// with an "<!-- raw HTML omitted -->" comment.
var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// RenderHTML converts markdown recipe content to HTML.
func RenderHTML(content string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(content), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
