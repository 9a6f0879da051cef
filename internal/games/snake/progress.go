package snake

import "slices"

// ProgressStore persists the cross-session high score and unlocked levels.
// Implementations report missing data as zero values, not errors.
type ProgressStore interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
	LoadUnlockedLevels() ([]int, error)
	SaveUnlockedLevels(ids []int) error
}

// noProgress keeps nothing.
type noProgress struct{}

func (noProgress) LoadHighScore() (int, error)        { return 0, nil }
func (noProgress) SaveHighScore(int) error            { return nil }
func (noProgress) LoadUnlockedLevels() ([]int, error) { return nil, nil }
func (noProgress) SaveUnlockedLevels([]int) error     { return nil }

// loadHighScore reads the stored best score. Unreadable or negative values
// fall back to 0.
func (e *Engine) loadHighScore() int {
	score, err := e.store.LoadHighScore()
	if err != nil {
		e.logger.Warn("load high score failed, starting from 0", "err", err)
		return 0
	}
	return max(score, 0)
}

// loadUnlocked reads the unlocked level ids. Level 1 is always unlocked.
func (e *Engine) loadUnlocked() map[int]bool {
	unlocked := map[int]bool{1: true}

	ids, err := e.store.LoadUnlockedLevels()
	if err != nil {
		e.logger.Warn("load unlocked levels failed, only level 1 unlocked", "err", err)
		return unlocked
	}
	for _, id := range ids {
		if id > 0 {
			unlocked[id] = true
		}
	}
	return unlocked
}

func (e *Engine) saveHighScore() {
	if err := e.store.SaveHighScore(e.highScore); err != nil {
		e.logger.Warn("save high score failed", "score", e.highScore, "err", err)
	}
}

func (e *Engine) saveUnlocked() {
	ids := e.unlockedIDs()
	if err := e.store.SaveUnlockedLevels(ids); err != nil {
		e.logger.Warn("save unlocked levels failed", "levels", ids, "err", err)
	}
}

func (e *Engine) unlockedIDs() []int {
	ids := make([]int, 0, len(e.unlocked))
	for id := range e.unlocked {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
