package repository

import (
	"context"
	"sort"
	"sync"

	"go-splendor/entities"
	"go-splendor/game"
)

// MemoryStore is an in-process StateStore and EventLog. Reads return copies.
type MemoryStore struct {
	mu     sync.RWMutex
	states map[string]*game.GameState
	events map[string][]game.Event
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		states: make(map[string]*game.GameState),
		events: make(map[string][]game.Event),
	}
}

func (m *MemoryStore) CreateState(_ context.Context, state *game.GameState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.states[state.ID]; ok {
		return ErrConflict
	}
	state.Version = 1
	m.states[state.ID] = state.Clone()
	return nil
}

func (m *MemoryStore) LoadState(_ context.Context, gameID string) (*game.GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	state, ok := m.states[gameID]
	if !ok {
		return nil, ErrNotFound
	}
	return state.Clone(), nil
}

func (m *MemoryStore) SaveState(_ context.Context, gameID string, state *game.GameState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	current, ok := m.states[gameID]
	if !ok {
		return ErrNotFound
	}
	if current.Version != state.Version {
		return ErrConflict
	}
	state.Version++
	m.states[gameID] = state.Clone()
	return nil
}

func (m *MemoryStore) ListGames(_ context.Context) ([]entities.GameInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	infos := make([]entities.GameInfo, 0, len(m.states))
	for _, state := range m.states {
		infos = append(infos, state.Info())
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].GameID < infos[j].GameID })
	return infos, nil
}

func (m *MemoryStore) AppendEvents(_ context.Context, gameID string, events []game.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events[gameID] = append(m.events[gameID], events...)
	return nil
}

func (m *MemoryStore) ListEvents(_ context.Context, gameID string) ([]game.Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]game.Event{}, m.events[gameID]...), nil
}
