package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gagquiz/quizboard/internal/database/models"
	"github.com/gagquiz/quizboard/internal/quiz"
	"github.com/google/uuid"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := Init(":memory:")
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	return NewStore(db)
}

func testResult(email string, score int) *models.Result {
	return &models.Result{
		ID:          uuid.NewString(),
		Email:       email,
		Name:        email,
		Score:       score,
		Correct:     score / 10,
		Wrong:       0,
		SubmittedAt: time.Now().UTC(),
	}
}

func TestGetParticipantNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetParticipant(context.Background(), "nobody@e.com")
	if !errors.Is(err, quiz.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateAndCountParticipants(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	p := &models.Participant{
		ID:        uuid.NewString(),
		Email:     "a@e.com",
		Name:      "Alice",
		StartedAt: time.Now().UTC(),
	}
	if err := store.CreateParticipant(ctx, p); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := store.GetParticipant(ctx, "a@e.com")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if got.Name != "Alice" {
		t.Fatalf("expected Alice, got %s", got.Name)
	}

	count, err := store.CountParticipants(ctx)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 participant, got %d", count)
	}
}

func TestUpsertResultIfBetter(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	if err := store.UpsertResultIfBetter(ctx, testResult("x@e.com", 10)); err != nil {
		t.Fatalf("initial upsert failed: %v", err)
	}

	// Lower score: statement succeeds, row untouched.
	if err := store.UpsertResultIfBetter(ctx, testResult("x@e.com", 5)); err != nil {
		t.Fatalf("lower upsert failed: %v", err)
	}
	r, err := store.GetResult(ctx, "x@e.com")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if r.Score != 10 {
		t.Fatalf("lower upsert must not apply, got score %d", r.Score)
	}

	// Equal score: also untouched.
	if err := store.UpsertResultIfBetter(ctx, testResult("x@e.com", 10)); err != nil {
		t.Fatalf("equal upsert failed: %v", err)
	}
	r, _ = store.GetResult(ctx, "x@e.com")
	if r.Score != 10 {
		t.Fatalf("equal upsert must not apply, got score %d", r.Score)
	}

	// Higher score replaces the row.
	better := testResult("x@e.com", 25)
	better.Name = "New Name"
	if err := store.UpsertResultIfBetter(ctx, better); err != nil {
		t.Fatalf("higher upsert failed: %v", err)
	}
	r, _ = store.GetResult(ctx, "x@e.com")
	if r.Score != 25 || r.Name != "New Name" {
		t.Fatalf("higher upsert must replace the row, got %+v", r)
	}

	// Still exactly one row for the email.
	results, err := store.ListResultsByScore(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected one row per email, got %d", len(results))
	}
}

func TestListResultsByScoreOrdering(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	for _, tc := range []struct {
		email string
		score int
	}{
		{"low@e.com", 10},
		{"high@e.com", 90},
		{"mid@e.com", 40},
	} {
		if err := store.UpsertResultIfBetter(ctx, testResult(tc.email, tc.score)); err != nil {
			t.Fatalf("upsert failed: %v", err)
		}
	}

	results, err := store.ListResultsByScore(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(results))
	}
	if results[0].Email != "high@e.com" || results[1].Email != "mid@e.com" || results[2].Email != "low@e.com" {
		t.Fatalf("unexpected order: %s, %s, %s", results[0].Email, results[1].Email, results[2].Email)
	}
}

func TestDeleteResultIdempotent(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	if err := store.UpsertResultIfBetter(ctx, testResult("x@e.com", 10)); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if err := store.DeleteResult(ctx, "x@e.com"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := store.GetResult(ctx, "x@e.com"); !errors.Is(err, quiz.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	// Unknown email deletes silently.
	if err := store.DeleteResult(ctx, "x@e.com"); err != nil {
		t.Fatalf("repeat delete must succeed: %v", err)
	}
	if err := store.DeleteExtraResult(ctx, "never@e.com"); err != nil {
		t.Fatalf("extra delete of unknown email must succeed: %v", err)
	}
}

func TestExtraResultRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	e := &models.ExtraResult{
		ID:          uuid.NewString(),
		Email:       "x@e.com",
		ExtraScore:  40,
		SubmittedAt: time.Now().UTC(),
	}
	if err := store.CreateExtraResult(ctx, e); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := store.GetExtraResult(ctx, "x@e.com")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if got.ExtraScore != 40 {
		t.Fatalf("expected extra score 40, got %d", got.ExtraScore)
	}

	extras, err := store.ListExtraResults(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(extras) != 1 {
		t.Fatalf("expected 1 extra row, got %d", len(extras))
	}
}
