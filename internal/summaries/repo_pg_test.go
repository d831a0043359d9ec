package summaries

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGStoreSaveSummary(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()
	store := &PGStore{DB: db}
	createdAt := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectExec("INSERT INTO summaries").
		WithArgs(sqlmock.AnyArg(), "https://example.com/post", "A summary.", createdAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	saved, err := store.SaveSummary(context.Background(), Summary{
		URL:       "https://example.com/post",
		Summary:   "A summary.",
		CreatedAt: createdAt,
	})
	if err != nil {
		t.Fatalf("SaveSummary: %v", err)
	}
	if saved.ID == "" {
		t.Fatalf("expected generated id")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPGStoreSaveSummaryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()
	store := &PGStore{DB: db}

	mock.ExpectExec("INSERT INTO summaries").WillReturnError(errors.New("boom"))

	if _, err := store.SaveSummary(context.Background(), Summary{URL: "u"}); err == nil {
		t.Fatalf("expected error")
	}
}
