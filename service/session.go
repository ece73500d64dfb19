package service

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"go-splendor/entities"
	"go-splendor/game"
	"go-splendor/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Publisher receives every committed change, e.g. to push it to websocket clients.
type Publisher interface {
	Publish(gameID string, state *game.GameState, events []game.Event)
}

type Options struct {
	Store       repository.StateStore
	Events      repository.EventLog
	Archive     repository.Archive // optional
	Locker      Locker
	Publisher   Publisher // optional
	Logger      *zap.Logger
	GameConfig  game.Config
	SaveRetries int
	Seed        func() (int64, error)
	NewID       func() string
}

type Result struct {
	State  *game.GameState `json:"state"`
	Events []game.Event    `json:"events"`
}

// SessionManager is the entry point for every game mutation. It holds the game lock across
// load, apply and save, and retries the whole cycle when the save hits a version conflict.
type SessionManager struct {
	engine      *game.Engine
	store       repository.StateStore
	events      repository.EventLog
	archive     repository.Archive
	locker      Locker
	publisher   Publisher
	log         *zap.Logger
	cfg         game.Config
	saveRetries int
	seed        func() (int64, error)
	newID       func() string
}

func NewSessionManager(engine *game.Engine, opts Options) *SessionManager {
	m := &SessionManager{
		engine:      engine,
		store:       opts.Store,
		events:      opts.Events,
		archive:     opts.Archive,
		locker:      opts.Locker,
		publisher:   opts.Publisher,
		log:         opts.Logger,
		cfg:         opts.GameConfig,
		saveRetries: opts.SaveRetries,
		seed:        opts.Seed,
		newID:       opts.NewID,
	}
	if m.locker == nil {
		m.locker = NewMemoryLocker()
	}
	if m.log == nil {
		m.log = zap.NewNop()
	}
	if m.saveRetries < 1 {
		m.saveRetries = 3
	}
	if m.seed == nil {
		m.seed = randomSeed
	}
	if m.newID == nil {
		m.newID = newGameID
	}
	if m.cfg.MaxSeats == 0 {
		m.cfg = game.DefaultConfig()
	}
	return m
}

// CreateGame opens a waiting game with the host in seat 0.
func (m *SessionManager) CreateGame(ctx context.Context, hostID string) (*game.GameState, error) {
	for attempt := 0; attempt < m.saveRetries; attempt++ {
		state := game.New(m.newID(), hostID, m.cfg)
		if err := state.Join(hostID); err != nil {
			return nil, err
		}
		err := m.store.CreateState(ctx, state)
		if errors.Is(err, repository.ErrConflict) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("create game: %w", err)
		}
		m.log.Info("game created", zap.String("gameID", state.ID), zap.String("hostID", hostID))
		m.publish(state, nil)
		return state, nil
	}
	return nil, fmt.Errorf("create game: no free game id after %d attempts", m.saveRetries)
}

func (m *SessionManager) Join(ctx context.Context, gameID, playerID string) (*Result, error) {
	return m.mutate(ctx, gameID, func(s *game.GameState) (*game.GameState, []game.Event, error) {
		if err := s.Join(playerID); err != nil {
			return nil, nil, err
		}
		return s, nil, nil
	})
}

// Start deals the game. Only the host may start it.
func (m *SessionManager) Start(ctx context.Context, gameID, requesterID string) (*Result, error) {
	return m.mutate(ctx, gameID, func(s *game.GameState) (*game.GameState, []game.Event, error) {
		if s.HostID != requesterID {
			return nil, nil, &game.Rejection{
				Kind:     game.KindNotHost,
				Message:  "only the host can start the game",
				Metadata: map[string]any{"hostID": s.HostID},
			}
		}
		seed, err := m.seed()
		if err != nil {
			return nil, nil, fmt.Errorf("seed: %w", err)
		}
		return m.engine.Start(s, seed)
	})
}

// Apply submits an action for a seat.
func (m *SessionManager) Apply(ctx context.Context, gameID string, seat int, action game.Action) (*Result, error) {
	return m.mutate(ctx, gameID, func(s *game.GameState) (*game.GameState, []game.Event, error) {
		return m.engine.Apply(s, seat, action)
	})
}

// ApplyAsPlayer resolves the player's seat and submits the action.
func (m *SessionManager) ApplyAsPlayer(ctx context.Context, gameID, playerID string, action game.Action) (*Result, error) {
	return m.mutate(ctx, gameID, func(s *game.GameState) (*game.GameState, []game.Event, error) {
		seat, ok := s.SeatOf(playerID)
		if !ok {
			return nil, nil, &game.Rejection{
				Kind:     game.KindNotInGame,
				Message:  "player is not seated in this game",
				Metadata: map[string]any{"playerID": playerID},
			}
		}
		return m.engine.Apply(s, seat, action)
	})
}

func (m *SessionManager) GetState(ctx context.Context, gameID string) (*game.GameState, error) {
	return m.store.LoadState(ctx, gameID)
}

func (m *SessionManager) ListGames(ctx context.Context) ([]entities.GameInfo, error) {
	return m.store.ListGames(ctx)
}

func (m *SessionManager) ListEvents(ctx context.Context, gameID string) ([]game.Event, error) {
	if _, err := m.store.LoadState(ctx, gameID); err != nil {
		return nil, err
	}
	return m.events.ListEvents(ctx, gameID)
}

type operation func(*game.GameState) (*game.GameState, []game.Event, error)

func (m *SessionManager) mutate(ctx context.Context, gameID string, op operation) (*Result, error) {
	unlock, err := m.locker.Lock(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("lock game %s: %w", gameID, err)
	}
	defer unlock()

	log := m.log.With(zap.String("gameID", gameID))
	for attempt := 1; attempt <= m.saveRetries; attempt++ {
		state, err := m.store.LoadState(ctx, gameID)
		if err != nil {
			return nil, err
		}

		next, events, err := op(state)
		if err != nil {
			if rej, ok := game.AsRejection(err); ok {
				log.Info("action rejected", zap.String("kind", string(rej.Kind)), zap.String("reason", rej.Message))
			}
			return nil, err
		}

		next.Version = state.Version
		err = m.store.SaveState(ctx, gameID, next)
		if errors.Is(err, repository.ErrConflict) {
			log.Warn("save conflict, retrying", zap.Int("attempt", attempt))
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("save game %s: %w", gameID, err)
		}

		m.afterCommit(ctx, log, next, events)
		return &Result{State: next, Events: events}, nil
	}
	return nil, &game.Rejection{
		Kind:     game.KindConcurrentModification,
		Message:  "game was modified concurrently",
		Metadata: map[string]any{"attempts": m.saveRetries},
	}
}

// afterCommit runs once the new state is durable. Its failures are logged, not returned:
// the action has already happened.
func (m *SessionManager) afterCommit(ctx context.Context, log *zap.Logger, state *game.GameState, events []game.Event) {
	if len(events) > 0 && m.events != nil {
		if err := m.events.AppendEvents(ctx, state.ID, events); err != nil {
			log.Error("append events failed", zap.Int64("fromSeq", events[0].Seq), zap.Error(err))
		}
	}
	if state.Status == entities.GameStatusFinished && m.archive != nil {
		if err := m.archive.ArchiveGame(ctx, state); err != nil {
			log.Error("archive game failed", zap.Error(err))
		} else {
			log.Info("game finished", zap.String("winnerID", state.WinnerID), zap.Int("round", state.Round))
		}
	}
	m.publish(state, events)
}

func (m *SessionManager) publish(state *game.GameState, events []game.Event) {
	if m.publisher != nil {
		m.publisher.Publish(state.ID, state.Clone(), events)
	}
}

func randomSeed() (int64, error) {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(b[:]) >> 1), nil
}

// newGameID is an 8-character id cut from a uuid.
func newGameID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}
