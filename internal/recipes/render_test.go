package recipes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderHTMLMarkdown(t *testing.T) {
	html, err := RenderHTML("# Tomato Soup\n\n- 4 tomatoes\n- **salt**")
	require.NoError(t, err)
	assert.Contains(t, html, "<h1>Tomato Soup</h1>")
	assert.Contains(t, html, "<li><strong>salt</strong></li>")
}

func TestRenderHTMLOmitsRawHTML(t *testing.T) {
	html, err := RenderHTML("Soup <script>alert(1)</script>\n\n<div>block</div>")
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
	assert.NotContains(t, html, "<div>")
	assert.Contains(t, html, "<!-- raw HTML omitted -->")
}
