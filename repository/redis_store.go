package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"go-splendor/entities"
	"go-splendor/game"

	"github.com/go-redis/redis/v8"
)

// RedisStore keeps each game as a hash {data, version, status} and its events as a list.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) CreateState(ctx context.Context, state *game.GameState) error {
	key := stateKey(state.ID)
	created := state.Clone()
	created.Version = 1
	data, err := json.Marshal(created)
	if err != nil {
		return fmt.Errorf("marshal game %s: %w", state.ID, err)
	}

	err = s.rdb.Watch(ctx, func(tx *redis.Tx) error {
		n, err := tx.Exists(ctx, key).Result()
		if err != nil {
			return err
		}
		if n > 0 {
			return ErrConflict
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, "data", data, "version", created.Version, "status", string(created.Status))
			pipe.SAdd(ctx, gamesKey, state.ID)
			return nil
		})
		return err
	}, key)
	if err != nil {
		if errors.Is(err, ErrConflict) || errors.Is(err, redis.TxFailedErr) {
			return ErrConflict
		}
		return fmt.Errorf("create game %s: %w", state.ID, err)
	}
	state.Version = created.Version
	return nil
}

func (s *RedisStore) LoadState(ctx context.Context, gameID string) (*game.GameState, error) {
	data, err := s.rdb.HGet(ctx, stateKey(gameID), "data").Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load game %s: %w", gameID, err)
	}
	var state game.GameState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("decode game %s: %w", gameID, err)
	}
	return &state, nil
}

func (s *RedisStore) SaveState(ctx context.Context, gameID string, state *game.GameState) error {
	key := stateKey(gameID)
	expected := state.Version
	saved := state.Clone()
	saved.Version = expected + 1
	data, err := json.Marshal(saved)
	if err != nil {
		return fmt.Errorf("marshal game %s: %w", gameID, err)
	}

	err = s.rdb.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.HGet(ctx, key, "version").Int64()
		if errors.Is(err, redis.Nil) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		if current != expected {
			return ErrConflict
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, "data", data, "version", saved.Version, "status", string(saved.Status))
			return nil
		})
		return err
	}, key)
	switch {
	case err == nil:
		state.Version = saved.Version
		return nil
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrConflict):
		return err
	case errors.Is(err, redis.TxFailedErr):
		return ErrConflict
	default:
		return fmt.Errorf("save game %s: %w", gameID, err)
	}
}

func (s *RedisStore) ListGames(ctx context.Context) ([]entities.GameInfo, error) {
	ids, err := s.rdb.SMembers(ctx, gamesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	sort.Strings(ids)

	infos := make([]entities.GameInfo, 0, len(ids))
	for _, id := range ids {
		state, err := s.LoadState(ctx, id)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		infos = append(infos, state.Info())
	}
	return infos, nil
}

func (s *RedisStore) AppendEvents(ctx context.Context, gameID string, events []game.Event) error {
	if len(events) == 0 {
		return nil
	}
	values := make([]interface{}, 0, len(events))
	for _, ev := range events {
		data, err := json.Marshal(ev)
		if err != nil {
			return fmt.Errorf("marshal event %d: %w", ev.Seq, err)
		}
		values = append(values, data)
	}
	if err := s.rdb.RPush(ctx, eventsKey(gameID), values...).Err(); err != nil {
		return fmt.Errorf("append events for %s: %w", gameID, err)
	}
	return nil
}

func (s *RedisStore) ListEvents(ctx context.Context, gameID string) ([]game.Event, error) {
	raw, err := s.rdb.LRange(ctx, eventsKey(gameID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list events for %s: %w", gameID, err)
	}
	events := make([]game.Event, 0, len(raw))
	for _, item := range raw {
		var ev game.Event
		if err := json.Unmarshal([]byte(item), &ev); err != nil {
			return nil, fmt.Errorf("decode event for %s: %w", gameID, err)
		}
		events = append(events, ev)
	}
	return events, nil
}
