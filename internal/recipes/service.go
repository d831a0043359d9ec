package recipes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"recipe-backend/internal/generation"
	"recipe-backend/internal/shared/metrics"
	"recipe-backend/internal/shared/telemetry"
)

const (
	// DefaultListLimit caps listing responses.
	DefaultListLimit = 20
	// DefaultOwnerKey is used when a caller supplies no owner.
	DefaultOwnerKey = "anonymous@example.com"

	saveFailedMessage = "failed to save recipe"
)

// GenerateInput is a request to generate and store a recipe.
type GenerateInput struct {
	Prompt   string
	OwnerKey string
	Title    string
}

// GenerateResult is returned from Generate once input validation passed.
type GenerateResult struct {
	Recipe Recipe
	Saved  bool
	Error  string
}

// Service contains business logic for recipes.
type Service struct {
	Repo         Repo
	Generator    generation.Client
	Templates    Templates
	DefaultOwner string
	Now          func() time.Time
}

// Generate obtains recipe text for in.Prompt and stores it. Generation and
// persistence failures are absorbed into the result; only invalid input is
// returned as an error.
func (s *Service) Generate(ctx context.Context, in GenerateInput) (GenerateResult, error) {
	prompt := strings.TrimSpace(in.Prompt)
	if prompt == "" {
		return GenerateResult{}, fmt.Errorf("%w: prompt is required", ErrInvalidInput)
	}
	owner := s.ownerKey(in.OwnerKey)
	explicitTitle := strings.TrimSpace(in.Title)

	metrics.IncGenerationStarted()
	start := time.Now()
	content, genErr := s.callGenerator(ctx, prompt)
	metrics.ObserveGenerationDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)

	recipe := Recipe{
		Prompt:    prompt,
		OwnerKey:  owner,
		CreatedAt: s.now(),
	}

	switch {
	case genErr == nil:
		metrics.IncGenerationSucceeded()
		recipe.Content = content
		recipe.Origin = OriginGenerated
		recipe.Succeeded = true
		recipe.Title = explicitTitle
		if recipe.Title == "" {
			recipe.Title = DeriveTitle(content, prompt)
		}
	default:
		origin := OriginError
		if errors.Is(genErr, generation.ErrUpstream) {
			origin = OriginFallback
			metrics.IncGenerationFallback()
		} else {
			metrics.IncGenerationError()
		}
		telemetry.Error("recipe.generation_failed", map[string]any{
			"origin":    string(origin),
			"owner_key": owner,
			"error":     genErr.Error(),
		})
		recipe.Content = s.Templates.Render(origin, prompt, reasonFor(genErr))
		recipe.Origin = origin
		recipe.Succeeded = false
		recipe.Title = explicitTitle
		if recipe.Title == "" {
			recipe.Title = FallbackTitle(prompt)
		}
	}

	if s.Repo == nil {
		metrics.IncRecipeSaveFailed()
		return GenerateResult{Recipe: recipe, Saved: false, Error: saveFailedMessage}, nil
	}
	// The write outlives a caller that disconnected during generation.
	saved, err := s.Repo.Create(context.WithoutCancel(ctx), recipe)
	if err != nil {
		metrics.IncRecipeSaveFailed()
		telemetry.Error("recipe.save_failed", map[string]any{
			"owner_key": owner,
			"origin":    string(recipe.Origin),
			"error":     err.Error(),
		})
		return GenerateResult{Recipe: recipe, Saved: false, Error: saveFailedMessage}, nil
	}

	metrics.IncRecipeSaved()
	telemetry.Info("recipe.saved", map[string]any{
		"recipe_id": saved.ID,
		"owner_key": owner,
		"origin":    string(saved.Origin),
		"title":     saved.Title,
	})
	return GenerateResult{Recipe: saved, Saved: true}, nil
}

// List returns up to DefaultListLimit summaries for owner, newest first.
func (s *Service) List(ctx context.Context, owner string) ([]Summary, error) {
	owner = normalizeOwner(owner)
	if owner == "" {
		return nil, fmt.Errorf("%w: ownerKey is required", ErrInvalidInput)
	}
	return s.Repo.ListByOwner(ctx, owner, DefaultListLimit)
}

// Get returns the full recipe with id.
func (s *Service) Get(ctx context.Context, id string) (Recipe, error) {
	id = strings.TrimSpace(id)
	if !s.Repo.ValidID(id) {
		return Recipe{}, fmt.Errorf("%w: invalid recipe id", ErrInvalidInput)
	}
	return s.Repo.GetByID(ctx, id)
}

// Delete removes the recipe with id and returns its summary.
func (s *Service) Delete(ctx context.Context, id string) (Summary, error) {
	id = strings.TrimSpace(id)
	if !s.Repo.ValidID(id) {
		return Summary{}, fmt.Errorf("%w: invalid recipe id", ErrInvalidInput)
	}
	summary, err := s.Repo.DeleteByID(ctx, id)
	if err != nil {
		return Summary{}, err
	}
	telemetry.Info("recipe.deleted", map[string]any{"recipe_id": summary.ID})
	return summary, nil
}

// callGenerator converts a panicking client into an error.
func (s *Service) callGenerator(ctx context.Context, prompt string) (content string, err error) {
	if s.Generator == nil {
		return "", generation.ErrNotConfigured
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("generation panic: %v", rec)
		}
	}()
	return s.Generator.Generate(ctx, prompt)
}

func (s *Service) ownerKey(raw string) string {
	if owner := normalizeOwner(raw); owner != "" {
		return owner
	}
	if owner := normalizeOwner(s.DefaultOwner); owner != "" {
		return owner
	}
	return DefaultOwnerKey
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// normalizeOwner trims and lower-cases owner keys so lookups match stored values.
func normalizeOwner(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func reasonFor(err error) string {
	var upstream *generation.UpstreamError
	if errors.As(err, &upstream) && upstream.StatusCode != 0 {
		return fmt.Sprintf("generator returned status %d", upstream.StatusCode)
	}
	if errors.Is(err, generation.ErrUpstream) {
		return "generator unavailable"
	}
	return "unexpected error"
}
