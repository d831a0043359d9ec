package summaries

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"recipe-backend/internal/shared/telemetry"
)

const maxSummaryRunes = 200

// placeholderBody stands in for fetched post content; fetching is not done.
const placeholderBody = "This is a sample blog post from %s. It contains detailed information about various topics " +
	"and provides comprehensive coverage of the subject matter. The blog discusses important concepts " +
	"and includes relevant examples to help readers understand the content better."

// Result is returned once the URL passed validation. Store failures are
// reported through the Saved flags, never as errors.
type Result struct {
	URL          string
	FullText     string
	Summary      string
	Translated   string
	PostSaved    bool
	SummarySaved bool
}

// Service summarizes blog posts and records them in two stores: the full post
// in Posts and the short row in Summaries.
type Service struct {
	Posts      PostStore
	Summaries  SummaryStore
	Translator Translator
	Now        func() time.Time
}

// Summarize builds the summary and translation for rawURL and saves both records.
func (s *Service) Summarize(ctx context.Context, rawURL string) (Result, error) {
	url := strings.TrimSpace(rawURL)
	if url == "" {
		return Result{}, fmt.Errorf("%w: url is required", ErrInvalidInput)
	}

	fullText := fmt.Sprintf(placeholderBody, url)
	summary := extractSummary(fullText)
	translated := summary
	if s.Translator != nil {
		translated = s.Translator.Translate(summary)
	}
	res := Result{URL: url, FullText: fullText, Summary: summary, Translated: translated}

	now := s.now()
	storeCtx := context.WithoutCancel(ctx)
	if s.Posts != nil {
		_, err := s.Posts.SavePost(storeCtx, Post{
			URL:        url,
			FullText:   fullText,
			Summary:    summary,
			Translated: translated,
			CreatedAt:  now,
		})
		if err != nil {
			telemetry.Error("summary.post_save_failed", map[string]any{"url": url, "error": err.Error()})
		} else {
			res.PostSaved = true
		}
	}
	if s.Summaries != nil {
		_, err := s.Summaries.SaveSummary(storeCtx, Summary{URL: url, Summary: summary, CreatedAt: now})
		if err != nil {
			telemetry.Error("summary.row_save_failed", map[string]any{"url": url, "error": err.Error()})
		} else {
			res.SummarySaved = true
		}
	}

	telemetry.Info("summary.created", map[string]any{
		"url":           url,
		"post_saved":    res.PostSaved,
		"summary_saved": res.SummarySaved,
	})
	return res, nil
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// extractSummary keeps the first sentence, capped at maxSummaryRunes.
func extractSummary(text string) string {
	text = strings.TrimSpace(text)
	if i := strings.Index(text, ". "); i >= 0 {
		text = text[:i+1]
	}
	if utf8.RuneCountInString(text) > maxSummaryRunes {
		text = string([]rune(text)[:maxSummaryRunes-3]) + "..."
	}
	return text
}
