// Package locker provides a mutex keyed by chat identity. Intake handlers
// hold the user's lock for the whole read-store-commit span, so a later
// message from the same user always observes the state committed by the
// previous one.
package locker

import "sync"

type entry struct {
	mu   sync.Mutex
	refs int
}

type KeyedMutex struct {
	mu      sync.Mutex
	entries map[int64]*entry
}

func New() *KeyedMutex {
	return &KeyedMutex{
		entries: make(map[int64]*entry),
	}
}

// Lock blocks until the key's lock is held and returns the unlock func.
// Entries are refcounted and removed when the last holder releases.
func (k *KeyedMutex) Lock(key int64) func() {
	k.mu.Lock()
	e, ok := k.entries[key]
	if !ok {
		e = &entry{}
		k.entries[key] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()

	return func() {
		e.mu.Unlock()
		k.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(k.entries, key)
		}
		k.mu.Unlock()
	}
}
