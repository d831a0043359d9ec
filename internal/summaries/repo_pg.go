package summaries

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

// PGStore writes summary rows to Postgres.
type PGStore struct {
	DB *sql.DB
}

// SaveSummary inserts the row under a new UUID.
func (s *PGStore) SaveSummary(ctx context.Context, summary Summary) (Summary, error) {
	const query = `
INSERT INTO summaries (id, url, summary, created_at)
VALUES ($1, $2, $3, $4)`

	summary.ID = uuid.NewString()
	if _, err := s.DB.ExecContext(ctx, query, summary.ID, summary.URL, summary.Summary, summary.CreatedAt); err != nil {
		return Summary{}, err
	}
	return summary, nil
}

var _ SummaryStore = (*PGStore)(nil)
