package quiz

import "sync"

// ResultStore is a single-slot holder for the most recent quiz Result,
// used to hand a just-computed result across a screen boundary without
// threading it through every intermediate call. Last write wins; a new
// quiz start clears it. Guarded by a mutex so it stays correct if reads
// and writes ever happen off the UI goroutine.
type ResultStore struct {
	mu   sync.Mutex
	last *Result
}

// NewResultStore creates an empty store. Construct one at the
// composition root and inject it everywhere a result crosses a boundary.
func NewResultStore() *ResultStore {
	return &ResultStore{}
}

// Save replaces the stored result.
func (rs *ResultStore) Save(r *Result) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.last = r
}

// Last returns the most recently saved result, or nil if the slot is
// empty.
func (rs *ResultStore) Last() *Result {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return rs.last
}

// Clear empties the slot.
func (rs *ResultStore) Clear() {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.last = nil
}
