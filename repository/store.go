package repository

import (
	"context"
	"errors"

	"go-splendor/entities"
	"go-splendor/game"
)

var (
	ErrNotFound = errors.New("game not found")
	ErrConflict = errors.New("game state version conflict")
)

// StateStore persists game snapshots with optimistic versioning.
type StateStore interface {
	// CreateState stores a new game at version 1. ErrConflict if the id is taken.
	CreateState(ctx context.Context, state *game.GameState) error
	LoadState(ctx context.Context, gameID string) (*game.GameState, error)
	// SaveState succeeds only if the stored version equals state.Version, then bumps
	// state.Version. ErrConflict otherwise.
	SaveState(ctx context.Context, gameID string, state *game.GameState) error
	ListGames(ctx context.Context) ([]entities.GameInfo, error)
}

// EventLog is the append-only record of applied events.
type EventLog interface {
	AppendEvents(ctx context.Context, gameID string, events []game.Event) error
	ListEvents(ctx context.Context, gameID string) ([]game.Event, error)
}

// Archive receives finished games.
type Archive interface {
	ArchiveGame(ctx context.Context, state *game.GameState) error
}
