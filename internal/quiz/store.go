package quiz

import (
	"context"

	"github.com/gagquiz/quizboard/internal/database/models"
)

// Store is the record store the engines run against. Lookups return
// ErrNotFound when no row matches; every write on a single row is assumed
// atomic at the store level. No transaction spanning tables is ever required.
type Store interface {
	GetParticipant(ctx context.Context, email string) (*models.Participant, error)
	CreateParticipant(ctx context.Context, p *models.Participant) error
	CountParticipants(ctx context.Context) (int64, error)

	GetResult(ctx context.Context, email string) (*models.Result, error)
	// UpsertResultIfBetter inserts the row, or replaces the existing row for
	// the same email only when the new score is strictly greater. Issued as a
	// single conditional statement so concurrent submissions for one email
	// cannot regress the stored score.
	UpsertResultIfBetter(ctx context.Context, r *models.Result) error
	ListResultsByScore(ctx context.Context) ([]models.Result, error)
	DeleteResult(ctx context.Context, email string) error

	GetExtraResult(ctx context.Context, email string) (*models.ExtraResult, error)
	CreateExtraResult(ctx context.Context, e *models.ExtraResult) error
	ListExtraResults(ctx context.Context) ([]models.ExtraResult, error)
	DeleteExtraResult(ctx context.Context, email string) error
}
