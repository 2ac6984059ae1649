package lock

import (
	"sync"

	"github.com/Kevindmm/secret-santa-organizer/internal/application/ports"
)

type entry struct {
	mu   sync.Mutex
	refs int
}

// KeyedMutex is an in-memory per-key lock suitable for single-instance
// deployment. For multi-instance, the storage layer's compare-and-set on
// the assignment latch carries the at-most-once guarantee.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*entry
}

// NewKeyedMutex returns an empty keyed lock.
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{locks: make(map[string]*entry)}
}

// Lock blocks until the key is held and returns the release func. Entries
// are reference-counted and removed once the last holder releases, so the
// map does not grow with the number of games ever seen.
func (m *KeyedMutex) Lock(key string) (unlock func()) {
	m.mu.Lock()
	e := m.locks[key]
	if e == nil {
		e = &entry{}
		m.locks[key] = e
	}
	e.refs++
	m.mu.Unlock()

	e.mu.Lock()
	return func() {
		e.mu.Unlock()
		m.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(m.locks, key)
		}
		m.mu.Unlock()
	}
}

var _ ports.GameLocker = (*KeyedMutex)(nil)
