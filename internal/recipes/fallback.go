package recipes

import "strings"

const (
	// DefaultFallbackTemplate is served when the generation service fails.
	DefaultFallbackTemplate = `Recipe for {prompt}

Our recipe generator is unavailable right now ({reason}), so here is a simple starting point.

Ingredients:
- The main ingredients you asked about: {prompt}
- 1 tablespoon olive oil
- Salt and pepper to taste

Instructions:
1. Prepare and chop the ingredients.
2. Heat the oil in a pan over medium heat.
3. Cook the ingredients until done, seasoning as you go.
4. Taste, adjust the seasoning and serve.

Please try again in a few minutes for a full recipe.`

	// DefaultErrorTemplate is served when generation fails unexpectedly.
	DefaultErrorTemplate = `Recipe for {prompt}

Something went wrong while creating this recipe ({reason}).

Ingredients:
- {prompt}

Instructions:
1. Try your request again.
2. If the problem persists, simplify the prompt.`
)

// Templates renders placeholder content for synthesized recipes. Templates may
// reference {prompt} and {reason}.
type Templates struct {
	Fallback string
	Error    string
}

// DefaultTemplates returns the built-in boilerplate.
func DefaultTemplates() Templates {
	return Templates{Fallback: DefaultFallbackTemplate, Error: DefaultErrorTemplate}
}

// WithOverrides replaces non-blank templates.
func (t Templates) WithOverrides(fallback, errTemplate string) Templates {
	if strings.TrimSpace(fallback) != "" {
		t.Fallback = fallback
	}
	if strings.TrimSpace(errTemplate) != "" {
		t.Error = errTemplate
	}
	return t
}

// Render produces content for origin.
func (t Templates) Render(origin Origin, prompt, reason string) string {
	tmpl := t.Fallback
	if origin == OriginError {
		tmpl = t.Error
	}
	if strings.TrimSpace(tmpl) == "" {
		if origin == OriginError {
			tmpl = DefaultErrorTemplate
		} else {
			tmpl = DefaultFallbackTemplate
		}
	}
	if strings.TrimSpace(reason) == "" {
		reason = "unknown error"
	}
	return strings.NewReplacer("{prompt}", prompt, "{reason}", reason).Replace(tmpl)
}
