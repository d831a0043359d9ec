package recipes

import "time"

type generateRequest struct {
	Prompt    string `json:"prompt"`
	OwnerKey  string `json:"ownerKey"`
	UserEmail string `json:"userEmail"`
	Title     string `json:"title"`
}

// GenerateResponse is the ingestion endpoint payload.
type GenerateResponse struct {
	ID        string `json:"id,omitempty"`
	Content   string `json:"content"`
	Title     string `json:"title"`
	Origin    Origin `json:"origin"`
	Succeeded bool   `json:"succeeded"`
	Saved     bool   `json:"saved"`
	Error     string `json:"error,omitempty"`
}

// SummaryResponse is the outward-facing listing representation.
type SummaryResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Prompt    string    `json:"prompt"`
	Origin    Origin    `json:"origin"`
	Succeeded bool      `json:"succeeded"`
	CreatedAt time.Time `json:"createdAt"`
}

// RecipeResponse is the outward-facing full representation.
type RecipeResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Prompt      string    `json:"prompt"`
	Content     string    `json:"content"`
	ContentHTML string    `json:"contentHtml,omitempty"`
	OwnerKey    string    `json:"ownerKey"`
	Origin      Origin    `json:"origin"`
	Succeeded   bool      `json:"succeeded"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ListResponse wraps listing results.
type ListResponse struct {
	Items []SummaryResponse `json:"items"`
	Count int               `json:"count"`
}

func toGenerateResponse(res GenerateResult) GenerateResponse {
	return GenerateResponse{
		ID:        res.Recipe.ID,
		Content:   res.Recipe.Content,
		Title:     res.Recipe.Title,
		Origin:    res.Recipe.Origin,
		Succeeded: res.Recipe.Succeeded,
		Saved:     res.Saved,
		Error:     res.Error,
	}
}

func toSummaryResponse(s Summary) SummaryResponse {
	return SummaryResponse{
		ID:        s.ID,
		Title:     s.Title,
		Prompt:    s.Prompt,
		Origin:    s.Origin,
		Succeeded: s.Succeeded,
		CreatedAt: s.CreatedAt,
	}
}

func toRecipeResponse(r Recipe) RecipeResponse {
	return RecipeResponse{
		ID:        r.ID,
		Title:     r.Title,
		Prompt:    r.Prompt,
		Content:   r.Content,
		OwnerKey:  r.OwnerKey,
		Origin:    r.Origin,
		Succeeded: r.Succeeded,
		CreatedAt: r.CreatedAt,
	}
}
