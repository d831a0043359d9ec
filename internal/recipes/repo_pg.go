package recipes

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const recipeColumns = `id, title, prompt, content, owner_key, origin, succeeded, created_at`

// Create inserts a recipe under a new UUID.
func (r *PGRepo) Create(ctx context.Context, recipe Recipe) (Recipe, error) {
	const query = `
INSERT INTO recipes (` + recipeColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	recipe.ID = uuid.NewString()
	_, err := r.DB.ExecContext(ctx, query,
		recipe.ID,
		recipe.Title,
		recipe.Prompt,
		recipe.Content,
		recipe.OwnerKey,
		string(recipe.Origin),
		recipe.Succeeded,
		recipe.CreatedAt,
	)
	if err != nil {
		return Recipe{}, err
	}
	return recipe, nil
}

// ListByOwner lists recipe summaries ordered newest-first.
func (r *PGRepo) ListByOwner(ctx context.Context, owner string, limit int) ([]Summary, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	const query = `
SELECT id, title, prompt, origin, succeeded, created_at
FROM recipes
WHERE owner_key = $1
ORDER BY created_at DESC
LIMIT $2`

	rows, err := r.DB.QueryContext(ctx, query, owner, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Summary, 0)
	for rows.Next() {
		var (
			summary Summary
			origin  string
		)
		if err := rows.Scan(
			&summary.ID,
			&summary.Title,
			&summary.Prompt,
			&origin,
			&summary.Succeeded,
			&summary.CreatedAt,
		); err != nil {
			return nil, err
		}
		summary.Origin = Origin(origin)
		out = append(out, summary)
	}
	return out, rows.Err()
}

// GetByID returns a recipe by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Recipe, error) {
	const query = `
SELECT ` + recipeColumns + `
FROM recipes
WHERE id = $1
LIMIT 1`
	return scanRecipe(r.DB.QueryRowContext(ctx, query, id))
}

// DeleteByID deletes a recipe and returns its summary.
func (r *PGRepo) DeleteByID(ctx context.Context, id string) (Summary, error) {
	const query = `
DELETE FROM recipes
WHERE id = $1
RETURNING ` + recipeColumns
	recipe, err := scanRecipe(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		return Summary{}, err
	}
	return recipe.Summary(), nil
}

// ValidID accepts UUIDs.
func (r *PGRepo) ValidID(id string) bool {
	return validUUID(id)
}

func scanRecipe(row *sql.Row) (Recipe, error) {
	var (
		recipe Recipe
		origin string
	)
	err := row.Scan(
		&recipe.ID,
		&recipe.Title,
		&recipe.Prompt,
		&recipe.Content,
		&recipe.OwnerKey,
		&origin,
		&recipe.Succeeded,
		&recipe.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Recipe{}, ErrNotFound
		}
		return Recipe{}, err
	}
	recipe.Origin = Origin(origin)
	return recipe, nil
}

var _ Repo = (*PGRepo)(nil)
