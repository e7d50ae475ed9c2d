package keylock

import "sync"

// KeyLock hands out one mutex per key. The booking service holds the key's lock
// across its overlap check and insert so two creations for the same item cannot
// interleave between check and write.
type KeyLock struct {
	mu    sync.Mutex
	locks map[string]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

func New() *KeyLock {
	return &KeyLock{
		locks: map[string]*entry{},
	}
}

// Lock acquires the mutex for key, creating it on first use.
func (k *KeyLock) Lock(key string) {
	k.mu.Lock()
	e, ok := k.locks[key]
	if !ok {
		e = &entry{}
		k.locks[key] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()
}

// Unlock releases the mutex for key and drops it once nobody waits on it.
func (k *KeyLock) Unlock(key string) {
	k.mu.Lock()
	e, ok := k.locks[key]
	if ok {
		e.refs--
		if e.refs == 0 {
			delete(k.locks, key)
		}
	}
	k.mu.Unlock()

	if ok {
		e.mu.Unlock()
	}
}
