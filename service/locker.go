package service

import (
	"context"
	"sync"
)

// Locker serializes work per game. The returned func releases the lock.
type Locker interface {
	Lock(ctx context.Context, gameID string) (func(), error)
}

// MemoryLocker is a keyed mutex for single-process deployments.
type MemoryLocker struct {
	mu    sync.Mutex
	locks map[string]*gameLock
}

type gameLock struct {
	sem  chan struct{}
	refs int
}

func NewMemoryLocker() *MemoryLocker {
	return &MemoryLocker{locks: make(map[string]*gameLock)}
}

func (l *MemoryLocker) Lock(ctx context.Context, gameID string) (func(), error) {
	l.mu.Lock()
	gl, ok := l.locks[gameID]
	if !ok {
		gl = &gameLock{sem: make(chan struct{}, 1)}
		l.locks[gameID] = gl
	}
	gl.refs++
	l.mu.Unlock()

	select {
	case gl.sem <- struct{}{}:
	case <-ctx.Done():
		l.release(gameID, gl)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-gl.sem
			l.release(gameID, gl)
		})
	}, nil
}

func (l *MemoryLocker) release(gameID string, gl *gameLock) {
	l.mu.Lock()
	defer l.mu.Unlock()
	gl.refs--
	if gl.refs == 0 {
		delete(l.locks, gameID)
	}
}

// size reports how many games currently have waiters or holders.
func (l *MemoryLocker) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
