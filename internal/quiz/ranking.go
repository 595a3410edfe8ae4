package quiz

import (
	"context"
	"math"
	"sort"
	"time"
)

// LeaderboardEntry is one admin leaderboard row: a result enriched with the
// matching bonus score. ExtraScore is nil when the bonus round was never
// taken; it counts as 0 towards TotalScore.
type LeaderboardEntry struct {
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Score       int       `json:"score"`
	Correct     int       `json:"correct"`
	Wrong       int       `json:"wrong"`
	SubmittedAt time.Time `json:"submitted_at"`
	ExtraScore  *int      `json:"extra_score"`
	TotalScore  int       `json:"total_score"`
}

// Stats are the admin aggregates over the full result set.
type Stats struct {
	TotalParticipants int64   `json:"total_participants"`
	TotalCompleted    int     `json:"total_completed"`
	AvgScore          float64 `json:"avg_score"`
	AvgCorrect        float64 `json:"avg_correct"`
	MaxScore          int     `json:"max_score"`
}

// Ranking computes ranks and aggregates on demand from the injected store.
type Ranking struct {
	store Store
}

func NewRanking(store Store) *Ranking {
	return &Ranking{store: store}
}

// Rank returns the 1-based position of the email among all results, ordered
// by primary score descending. Bonus scores are deliberately excluded here;
// they only count on the admin leaderboard. rank is nil when the email has no
// result, total is the result count either way.
func (r *Ranking) Rank(ctx context.Context, email string) (rank *int, total int, err error) {
	if email == "" {
		return nil, 0, validationErr("email is required")
	}

	results, err := r.store.ListResultsByScore(ctx)
	if err != nil {
		return nil, 0, storeErr("failed to list results", err)
	}

	for i, res := range results {
		if res.Email == email {
			pos := i + 1
			rank = &pos
			break
		}
	}
	return rank, len(results), nil
}

// Leaderboard joins every result with its bonus score by email and orders the
// rows by combined total descending. This ordering is independent of Rank's
// primary-score ordering.
func (r *Ranking) Leaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	results, err := r.store.ListResultsByScore(ctx)
	if err != nil {
		return nil, storeErr("failed to list results", err)
	}
	extras, err := r.store.ListExtraResults(ctx)
	if err != nil {
		return nil, storeErr("failed to list bonus results", err)
	}

	extraByEmail := make(map[string]int, len(extras))
	for _, e := range extras {
		extraByEmail[e.Email] = e.ExtraScore
	}

	entries := make([]LeaderboardEntry, 0, len(results))
	for _, res := range results {
		entry := LeaderboardEntry{
			Email:       res.Email,
			Name:        res.Name,
			Score:       res.Score,
			Correct:     res.Correct,
			Wrong:       res.Wrong,
			SubmittedAt: res.SubmittedAt,
			TotalScore:  res.Score,
		}
		if extra, ok := extraByEmail[res.Email]; ok {
			entry.ExtraScore = &extra
			entry.TotalScore += extra
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].TotalScore > entries[j].TotalScore
	})
	return entries, nil
}

// AggregateStats computes participant and completion counts plus score
// averages and the maximum score. Averages are rounded to one decimal place
// and everything is 0 on an empty result set.
func (r *Ranking) AggregateStats(ctx context.Context) (Stats, error) {
	results, err := r.store.ListResultsByScore(ctx)
	if err != nil {
		return Stats{}, storeErr("failed to list results", err)
	}
	participants, err := r.store.CountParticipants(ctx)
	if err != nil {
		return Stats{}, storeErr("failed to count participants", err)
	}

	stats := Stats{
		TotalParticipants: participants,
		TotalCompleted:    len(results),
	}
	if len(results) == 0 {
		return stats, nil
	}

	var scoreSum, correctSum int
	for _, res := range results {
		scoreSum += res.Score
		correctSum += res.Correct
		if res.Score > stats.MaxScore {
			stats.MaxScore = res.Score
		}
	}
	stats.AvgScore = round1(float64(scoreSum) / float64(len(results)))
	stats.AvgCorrect = round1(float64(correctSum) / float64(len(results)))
	return stats, nil
}

// Delete removes the result and bonus rows for an email. The participant row
// stays: deletion erases competitive standing, not the participation record.
// Deleting an unknown email succeeds silently.
func (r *Ranking) Delete(ctx context.Context, email string) error {
	if email == "" {
		return validationErr("email is required")
	}
	if err := r.store.DeleteResult(ctx, email); err != nil {
		return storeErr("failed to delete result", err)
	}
	if err := r.store.DeleteExtraResult(ctx, email); err != nil {
		return storeErr("failed to delete bonus result", err)
	}
	return nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
