// Package concurrency provides per-key mutual exclusion for session actors.
package concurrency

import (
	"sync"
)

// LockManager hands out one mutex per session id
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns the mutex for the given key, creating it on first use
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// WithLock runs fn while holding the key's mutex
func (lm *LockManager) WithLock(key string, fn func() error) error {
	mu := lm.GetLock(key)
	mu.Lock()
	defer mu.Unlock()
	return fn()
}

// Forget drops the mutex for a key that will not be used again.
// Callers must hold no reference to the old lock.
func (lm *LockManager) Forget(key string) {
	lm.locks.Delete(key)
}
