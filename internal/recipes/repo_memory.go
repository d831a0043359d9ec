package recipes

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryRepo stores recipes in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu   sync.RWMutex
	byID map[string]Recipe
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[string]Recipe)}
}

// Create stores the recipe under a new UUID.
func (r *MemoryRepo) Create(ctx context.Context, recipe Recipe) (Recipe, error) {
	if err := ctx.Err(); err != nil {
		return Recipe{}, err
	}
	recipe.ID = uuid.NewString()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[recipe.ID] = recipe
	return recipe, nil
}

// ListByOwner returns up to limit summaries for owner, newest first.
func (r *MemoryRepo) ListByOwner(ctx context.Context, owner string, limit int) ([]Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	matched := make([]Recipe, 0)
	for _, recipe := range r.byID {
		if recipe.OwnerKey == owner {
			matched = append(matched, recipe)
		}
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].ID > matched[j].ID
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}

	out := make([]Summary, 0, len(matched))
	for _, recipe := range matched {
		out = append(out, recipe.Summary())
	}
	return out, nil
}

// GetByID returns the recipe with id.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Recipe, error) {
	if err := ctx.Err(); err != nil {
		return Recipe{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	recipe, ok := r.byID[id]
	if !ok {
		return Recipe{}, ErrNotFound
	}
	return recipe, nil
}

// DeleteByID removes the recipe with id.
func (r *MemoryRepo) DeleteByID(ctx context.Context, id string) (Summary, error) {
	if err := ctx.Err(); err != nil {
		return Summary{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	recipe, ok := r.byID[id]
	if !ok {
		return Summary{}, ErrNotFound
	}
	delete(r.byID, id)
	return recipe.Summary(), nil
}

// ValidID accepts UUIDs.
func (r *MemoryRepo) ValidID(id string) bool {
	return validUUID(id)
}

func validUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

var _ Repo = (*MemoryRepo)(nil)
