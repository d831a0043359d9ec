package recipes

import "context"

// Repo defines persistence operations for recipes.
type Repo interface {
	// Create stores recipe and returns it with its assigned ID.
	Create(ctx context.Context, recipe Recipe) (Recipe, error)
	// ListByOwner returns summaries for owner ordered newest-first.
	ListByOwner(ctx context.Context, owner string, limit int) ([]Summary, error)
	GetByID(ctx context.Context, id string) (Recipe, error)
	// DeleteByID removes the recipe and returns its summary.
	DeleteByID(ctx context.Context, id string) (Summary, error)
	// ValidID reports whether id is well-formed for this store.
	ValidID(id string) bool
}
