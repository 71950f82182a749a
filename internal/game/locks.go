package game

import "sync"

// gameLocks serializes play/cancel calls per game id. Two decisive
// submissions for the same game must not both read an in-progress state.
type gameLocks struct {
	mu    sync.Mutex
	locks map[string]*gameLock
}

type gameLock struct {
	mu   sync.Mutex
	refs int
}

func newGameLocks() *gameLocks {
	return &gameLocks{locks: make(map[string]*gameLock)}
}

// acquire blocks until the caller holds the game's lock and returns the
// release func. Entries are reference counted and dropped from the map once
// the last holder releases, so finished games do not pin a mutex forever.
func (l *gameLocks) acquire(gameID string) func() {
	l.mu.Lock()
	entry, ok := l.locks[gameID]
	if !ok {
		entry = &gameLock{}
		l.locks[gameID] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()
	return func() {
		entry.mu.Unlock()

		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.locks, gameID)
		}
		l.mu.Unlock()
	}
}
