package lock

import (
	"sync"
	"testing"
	"time"
)

func TestLockIsMutuallyExclusive(t *testing.T) {
	m := NewKeyedMutex()

	const goroutines = 20
	var counter, max int
	var track sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := m.Lock("GAME1")
			defer unlock()

			track.Lock()
			counter++
			if counter > max {
				max = counter
			}
			track.Unlock()

			time.Sleep(time.Millisecond)

			track.Lock()
			counter--
			track.Unlock()
		}()
	}
	wg.Wait()

	if max != 1 {
		t.Errorf("expected at most 1 concurrent holder, saw %d", max)
	}
}

func TestDifferentKeysDoNotBlock(t *testing.T) {
	m := NewKeyedMutex()
	unlockA := m.Lock("AAAA")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := m.Lock("BBBB")
		unlockB()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on a different key blocked")
	}
}

func TestEntriesAreReleased(t *testing.T) {
	m := NewKeyedMutex()
	unlock := m.Lock("GAME1")
	unlock()

	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.locks) != 0 {
		t.Errorf("expected empty lock map after release, got %d entries", len(m.locks))
	}
}
