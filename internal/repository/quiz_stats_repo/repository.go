package quiz_stats_repo

import (
	"club_backend/internal/repository"
	"sync"
)

// StatsRepo keeps per-scenario vote counters in process memory. Counters are
// a presentation aid rebuilt from the stored responses on restart, so they
// are not persisted themselves.
type StatsRepo struct {
	mtx   sync.RWMutex
	votes map[string]map[string]int // scenario id -> tile id -> count
}

func NewQuizStatsRepository() repository.QuizStatsRepository {
	return &StatsRepo{
		votes: make(map[string]map[string]int),
	}
}

// RecordResponse bumps the counter for one submitted answer.
func (r *StatsRepo) RecordResponse(scenarioID, tileID string) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	perTile, ok := r.votes[scenarioID]
	if !ok {
		perTile = make(map[string]int)
		r.votes[scenarioID] = perTile
	}
	perTile[tileID]++
}

// VoteCounts returns a copy of the counters for one scenario.
func (r *StatsRepo) VoteCounts(scenarioID string) map[string]int {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	out := make(map[string]int, len(r.votes[scenarioID]))
	for tileID, count := range r.votes[scenarioID] {
		out[tileID] = count
	}
	return out
}
