package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"trivia-quiz-service/internal/domain"
)

func TestResultStoreExpiresResults(t *testing.T) {
	now := time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC)
	store := NewResultStoreWithClock(time.Hour, func() time.Time { return now })
	ctx := context.Background()

	if err := store.SaveResult(ctx, domain.Result{ID: "r1", CorrectCount: 2, TotalCount: 3}); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.GetResult(ctx, "r1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.CorrectCount != 2 || got.TotalCount != 3 {
		t.Fatalf("unexpected result %+v", got)
	}

	now = now.Add(2 * time.Hour)
	if _, err := store.GetResult(ctx, "r1"); !errors.Is(err, domain.ErrResultNotFound) {
		t.Fatalf("expected expired result, got %v", err)
	}
	if _, err := store.GetResult(ctx, "unknown"); !errors.Is(err, domain.ErrResultNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
