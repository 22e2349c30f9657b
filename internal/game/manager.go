package game

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"gomokugen/internal/gomoku"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrGameOver     = errors.New("game is over")
)

// Manager keeps games in memory. All methods are safe for concurrent use;
// callers only ever see copies of the stored state.
type Manager struct {
	mu    sync.RWMutex
	games map[string]*GameState
}

func NewManager() *Manager {
	return &Manager{games: make(map[string]*GameState)}
}

func (m *Manager) NewGame(side int) (GameState, error) {
	b, err := gomoku.New(side)
	if err != nil {
		return GameState{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	g := &GameState{
		ID:        uuid.NewString(),
		Board:     b,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.games[g.ID] = g
	return *g, nil
}

func (m *Manager) Get(id string) (GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return GameState{}, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	return *g, nil
}

// Play applies mv for the side to move and returns the new outcome.
func (m *Manager) Play(id string, mv gomoku.Move) (gomoku.Outcome, error) {
	return m.update(id, func(b *gomoku.Board) error {
		return b.TryApply(mv)
	})
}

// PlayRandom plays a uniformly chosen empty cell for the side to move.
func (m *Manager) PlayRandom(id string, sample gomoku.Sampler) (gomoku.Move, gomoku.Outcome, error) {
	var mv gomoku.Move
	o, err := m.update(id, func(b *gomoku.Board) error {
		mv = b.ApplyRandom(sample)
		return nil
	})
	return mv, o, err
}

func (m *Manager) update(id string, apply func(*gomoku.Board) error) (gomoku.Outcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[id]
	if !ok {
		return gomoku.Outcome{}, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	if o := g.Board.Outcome(); o.Decided() {
		return o, fmt.Errorf("%w: %v", ErrGameOver, o)
	}
	if err := apply(&g.Board); err != nil {
		return g.Board.Outcome(), err
	}
	g.UpdatedAt = time.Now()
	return g.Board.Outcome(), nil
}

func (m *Manager) Remove(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	delete(m.games, id)
	return nil
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
