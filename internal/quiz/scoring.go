package quiz

import (
	"context"
	"errors"
	"time"

	"github.com/gagquiz/quizboard/internal/database/models"
	"github.com/google/uuid"
)

// Scoring validates and merges incoming submissions. It is stateless between
// calls; all state lives in the injected store.
type Scoring struct {
	store Store
	now   func() time.Time
}

func NewScoring(store Store) *Scoring {
	return &Scoring{store: store, now: time.Now}
}

// NewScoringWithClock is for tests that need deterministic timestamps.
func NewScoringWithClock(store Store, now func() time.Time) *Scoring {
	return &Scoring{store: store, now: now}
}

// RegisterStart records the first quiz start for an email. Calling it again
// for a known email is a no-op and reports returning=true.
func (s *Scoring) RegisterStart(ctx context.Context, email, name string) (bool, error) {
	if email == "" {
		return false, validationErr("email is required")
	}

	_, err := s.store.GetParticipant(ctx, email)
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return false, storeErr("failed to look up participant", err)
	}

	p := &models.Participant{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      name,
		StartedAt: s.now().UTC(),
	}
	if err := s.store.CreateParticipant(ctx, p); err != nil {
		return false, storeErr("failed to create participant", err)
	}
	return false, nil
}

// SubmitResult applies the keep-best rule: a new submission only replaces the
// stored row when its score is strictly greater, and then it replaces every
// field. The caller is not told whether the write applied.
func (s *Scoring) SubmitResult(ctx context.Context, email, name string, score, correct, wrong int) error {
	if email == "" {
		return validationErr("email is required")
	}
	if score < 0 || correct < 0 || wrong < 0 {
		return validationErr("score, correct and wrong must be non-negative")
	}

	r := &models.Result{
		ID:          uuid.NewString(),
		Email:       email,
		Name:        name,
		Score:       score,
		Correct:     correct,
		Wrong:       wrong,
		SubmittedAt: s.now().UTC(),
	}
	if err := s.store.UpsertResultIfBetter(ctx, r); err != nil {
		return storeErr("failed to store result", err)
	}
	return nil
}

// SubmitExtra records the single-attempt bonus round score. A repeat
// submission is a benign no-op reported through alreadyDone, not an error.
func (s *Scoring) SubmitExtra(ctx context.Context, email string, extraScore int) (alreadyDone bool, err error) {
	if email == "" {
		return false, validationErr("email is required")
	}

	_, err = s.store.GetExtraResult(ctx, email)
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return false, storeErr("failed to look up bonus result", err)
	}

	e := &models.ExtraResult{
		ID:          uuid.NewString(),
		Email:       email,
		ExtraScore:  extraScore,
		SubmittedAt: s.now().UTC(),
	}
	if err := s.store.CreateExtraResult(ctx, e); err != nil {
		return false, storeErr("failed to store bonus result", err)
	}
	return false, nil
}

// CheckUser reports whether the email completed the main quiz and whether the
// bonus round is already done. The bonus flag is forced false when the main
// quiz is incomplete, even if an orphan bonus row exists.
func (s *Scoring) CheckUser(ctx context.Context, email string) (exists, alreadyDoneExtra bool, err error) {
	if email == "" {
		return false, false, validationErr("email is required")
	}

	_, err = s.store.GetResult(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return false, false, nil
	}
	if err != nil {
		return false, false, storeErr("failed to look up result", err)
	}

	_, err = s.store.GetExtraResult(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return true, false, nil
	}
	if err != nil {
		return false, false, storeErr("failed to look up bonus result", err)
	}
	return true, true, nil
}
