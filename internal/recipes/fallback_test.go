package recipes

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemplatesRenderSubstitutes(t *testing.T) {
	got := DefaultTemplates().Render(OriginFallback, "chicken and rice", "upstream returned 500")

	assert.True(t, strings.HasPrefix(got, "Recipe for chicken and rice"))
	assert.Contains(t, got, "upstream returned 500")
	assert.NotContains(t, got, "{prompt}")
	assert.NotContains(t, got, "{reason}")
}

func TestTemplatesRenderErrorOrigin(t *testing.T) {
	got := DefaultTemplates().Render(OriginError, "soup", "")

	assert.Contains(t, got, "Something went wrong")
	assert.Contains(t, got, "unknown error")
}

func TestTemplatesWithOverrides(t *testing.T) {
	tmpl := DefaultTemplates().WithOverrides("Sorry, no {prompt} today.", " ")

	assert.Equal(t, "Sorry, no soup today.", tmpl.Render(OriginFallback, "soup", "x"))
	assert.Equal(t, DefaultErrorTemplate, tmpl.Error)
}

func TestTemplatesRenderBlankUsesDefault(t *testing.T) {
	got := Templates{}.Render(OriginFallback, "soup", "down")
	assert.Contains(t, got, "Our recipe generator is unavailable right now (down)")
}
