package storage

import (
	"fmt"
	"sync"
)

// Memory is a high score keeper that lives only as long as the process.
// Frontends fall back to it when the database cannot be opened.
type Memory struct {
	mu    sync.Mutex
	score int
}

// NewMemory creates a keeper holding score.
func NewMemory(score int) *Memory {
	return &Memory{score: max(score, 0)}
}

// Load returns the kept score.
func (m *Memory) Load() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.score, nil
}

// Save replaces the kept score.
func (m *Memory) Save(score int) error {
	if score < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeScore, score)
	}
	m.mu.Lock()
	m.score = score
	m.mu.Unlock()
	return nil
}
