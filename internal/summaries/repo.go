package summaries

import "context"

// PostStore persists full posts.
type PostStore interface {
	SavePost(ctx context.Context, post Post) (Post, error)
}

// SummaryStore persists the short summary rows.
type SummaryStore interface {
	SaveSummary(ctx context.Context, summary Summary) (Summary, error)
}
