package recipes

import "time"

// Origin tags where a recipe's content came from.
type Origin string

const (
	// OriginGenerated is content returned by the generation service.
	OriginGenerated Origin = "generated"
	// OriginFallback is placeholder content synthesized after an upstream failure.
	OriginFallback Origin = "fallback"
	// OriginError is placeholder content synthesized after an unexpected failure.
	OriginError Origin = "error"
)

// Valid reports whether o is a known origin.
func (o Origin) Valid() bool {
	switch o {
	case OriginGenerated, OriginFallback, OriginError:
		return true
	default:
		return false
	}
}

// Recipe is one persisted generation result. Records are immutable; ID is
// assigned by the repo at creation.
type Recipe struct {
	ID        string
	Title     string
	Prompt    string
	Content   string
	OwnerKey  string
	Origin    Origin
	Succeeded bool
	CreatedAt time.Time
}

// Summary is the listing projection of a Recipe; it omits Content.
type Summary struct {
	ID        string
	Title     string
	Prompt    string
	Origin    Origin
	Succeeded bool
	CreatedAt time.Time
}

// Summary projects r to its listing fields.
func (r Recipe) Summary() Summary {
	return Summary{
		ID:        r.ID,
		Title:     r.Title,
		Prompt:    r.Prompt,
		Origin:    r.Origin,
		Succeeded: r.Succeeded,
		CreatedAt: r.CreatedAt,
	}
}
