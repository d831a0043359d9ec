package summaries

import "time"

// Post is the full record of a summarized blog post.
type Post struct {
	ID         string
	URL        string
	FullText   string
	Summary    string
	Translated string
	CreatedAt  time.Time
}

// Summary is the short record kept alongside the post.
type Summary struct {
	ID        string
	URL       string
	Summary   string
	CreatedAt time.Time
}
