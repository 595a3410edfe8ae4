// Package testutil provides an in-memory quiz.Store for engine and API tests.
package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/gagquiz/quizboard/internal/database/models"
	"github.com/gagquiz/quizboard/internal/quiz"
)

// MemStore is a map-backed quiz.Store with the same visible semantics as the
// gorm implementation, including the conditional keep-best upsert.
type MemStore struct {
	mu           sync.RWMutex
	participants map[string]models.Participant
	results      map[string]models.Result
	extras       map[string]models.ExtraResult
}

func NewMemStore() *MemStore {
	return &MemStore{
		participants: make(map[string]models.Participant),
		results:      make(map[string]models.Result),
		extras:       make(map[string]models.ExtraResult),
	}
}

func (m *MemStore) GetParticipant(_ context.Context, email string) (*models.Participant, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.participants[email]
	if !ok {
		return nil, quiz.ErrNotFound
	}
	return &p, nil
}

func (m *MemStore) CreateParticipant(_ context.Context, p *models.Participant) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.participants[p.Email] = *p
	return nil
}

func (m *MemStore) CountParticipants(_ context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.participants)), nil
}

func (m *MemStore) GetResult(_ context.Context, email string) (*models.Result, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.results[email]
	if !ok {
		return nil, quiz.ErrNotFound
	}
	return &r, nil
}

func (m *MemStore) UpsertResultIfBetter(_ context.Context, r *models.Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.results[r.Email]
	if ok && r.Score <= existing.Score {
		return nil
	}
	row := *r
	if ok {
		// The conflict target keeps the original row identity.
		row.ID = existing.ID
	}
	m.results[r.Email] = row
	return nil
}

func (m *MemStore) ListResultsByScore(_ context.Context) ([]models.Result, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	results := make([]models.Result, 0, len(m.results))
	for _, r := range m.results {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results, nil
}

func (m *MemStore) DeleteResult(_ context.Context, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.results, email)
	return nil
}

func (m *MemStore) GetExtraResult(_ context.Context, email string) (*models.ExtraResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.extras[email]
	if !ok {
		return nil, quiz.ErrNotFound
	}
	return &e, nil
}

func (m *MemStore) CreateExtraResult(_ context.Context, e *models.ExtraResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.extras[e.Email] = *e
	return nil
}

func (m *MemStore) ListExtraResults(_ context.Context) ([]models.ExtraResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	extras := make([]models.ExtraResult, 0, len(m.extras))
	for _, e := range m.extras {
		extras = append(extras, e)
	}
	return extras, nil
}

func (m *MemStore) DeleteExtraResult(_ context.Context, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.extras, email)
	return nil
}
