package manager

import (
	"fmt"
	"sort"
	"sync"

	"retro-snake/game/types"
)

// ScoreManager is the score ledger: a bounded, descending list of the best
// scores, read and written through a Store.
type ScoreManager struct {
	mu    sync.Mutex
	store Store
	limit int
}

func NewScoreManager(store Store) *ScoreManager {
	return &ScoreManager{
		store: store,
		limit: types.MaxScores,
	}
}

// Record appends score, keeps the best entries and persists them. Scores of
// zero or less are ignored.
func (sm *ScoreManager) Record(score int) error {
	if score <= 0 {
		return nil
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	scores, err := sm.store.Load()
	if err != nil {
		return fmt.Errorf("record %d: %w", score, err)
	}
	scores = sm.normalize(append(scores, score))
	if err := sm.store.Save(scores); err != nil {
		return fmt.Errorf("record %d: %w", score, err)
	}
	return nil
}

// TopScores returns at most ten scores, best first.
func (sm *ScoreManager) TopScores() ([]int, error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	scores, err := sm.store.Load()
	if err != nil {
		return nil, err
	}
	return sm.normalize(scores), nil
}

// GetHighScore returns the best recorded score, or 0.
func (sm *ScoreManager) GetHighScore() (int, error) {
	scores, err := sm.TopScores()
	if err != nil || len(scores) == 0 {
		return 0, err
	}
	return scores[0], nil
}

// normalize drops invalid entries, sorts descending and truncates. Stored
// data written by hand or by an older build goes through the same path.
func (sm *ScoreManager) normalize(scores []int) []int {
	kept := make([]int, 0, len(scores))
	for _, s := range scores {
		if s > 0 {
			kept = append(kept, s)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(kept)))
	if len(kept) > sm.limit {
		kept = kept[:sm.limit]
	}
	return kept
}
