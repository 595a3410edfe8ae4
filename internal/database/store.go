package database

import (
	"context"
	"errors"

	"github.com/gagquiz/quizboard/internal/database/models"
	"github.com/gagquiz/quizboard/internal/quiz"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store implements quiz.Store on top of gorm. Every method is a single
// round trip; the keep-best rule is pushed into the database as a
// conditional upsert so no read-then-write race exists.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetParticipant(ctx context.Context, email string) (*models.Participant, error) {
	var p models.Participant
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&p).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (s *Store) CreateParticipant(ctx context.Context, p *models.Participant) error {
	return s.db.WithContext(ctx).Create(p).Error
}

func (s *Store) CountParticipants(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Participant{}).Count(&count).Error
	return count, err
}

func (s *Store) GetResult(ctx context.Context, email string) (*models.Result, error) {
	var r models.Result
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&r).Error; err != nil {
		return nil, translate(err)
	}
	return &r, nil
}

func (s *Store) UpsertResultIfBetter(ctx context.Context, r *models.Result) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "email"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"name":         r.Name,
			"score":        r.Score,
			"correct":      r.Correct,
			"wrong":        r.Wrong,
			"submitted_at": r.SubmittedAt,
		}),
		Where: clause.Where{Exprs: []clause.Expression{
			gorm.Expr("results.score < excluded.score"),
		}},
	}).Create(r).Error
}

func (s *Store) ListResultsByScore(ctx context.Context) ([]models.Result, error) {
	var results []models.Result
	if err := s.db.WithContext(ctx).Order("score desc").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (s *Store) DeleteResult(ctx context.Context, email string) error {
	return s.db.WithContext(ctx).Delete(&models.Result{}, "email = ?", email).Error
}

func (s *Store) GetExtraResult(ctx context.Context, email string) (*models.ExtraResult, error) {
	var e models.ExtraResult
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&e).Error; err != nil {
		return nil, translate(err)
	}
	return &e, nil
}

func (s *Store) CreateExtraResult(ctx context.Context, e *models.ExtraResult) error {
	return s.db.WithContext(ctx).Create(e).Error
}

func (s *Store) ListExtraResults(ctx context.Context) ([]models.ExtraResult, error) {
	var extras []models.ExtraResult
	if err := s.db.WithContext(ctx).Find(&extras).Error; err != nil {
		return nil, err
	}
	return extras, nil
}

func (s *Store) DeleteExtraResult(ctx context.Context, email string) error {
	return s.db.WithContext(ctx).Delete(&models.ExtraResult{}, "email = ?", email).Error
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return quiz.ErrNotFound
	}
	return err
}
