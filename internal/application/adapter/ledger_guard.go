// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import "sync"

// LedgerGuard is the single serialization point for the whole ledger.
//
// Every mutating use case runs under the write lock, which makes the
// check-then-act balance guard and max+1 ID assignment atomic: two
// concurrent expenses cannot both pass the balance check, and two
// concurrent creates cannot receive the same ID. Reads run concurrently
// with each other but never overlap a write.
type LedgerGuard struct {
	mu sync.RWMutex
}

// NewLedgerGuard creates a new ledger guard.
func NewLedgerGuard() *LedgerGuard {
	return &LedgerGuard{}
}

// Write runs fn under the exclusive lock.
func (g *LedgerGuard) Write(fn func() error) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return fn()
}

// Read runs fn under the shared lock.
func (g *LedgerGuard) Read(fn func() error) error {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return fn()
}
