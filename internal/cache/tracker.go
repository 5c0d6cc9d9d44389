package cache

import (
	"sync"
	"time"

	"github.com/acmedash/invoicer-server/internal/model"
)

var _ model.Revalidator = (*Tracker)(nil)

// Tracker records view paths whose cached rendering became stale after a
// write. Writers mark a path; the rendering layer checks it on the next read
// and calls Refresh once the path has been re-rendered.
type Tracker struct {
	mu    sync.RWMutex
	stale map[string]time.Time
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{stale: make(map[string]time.Time)}
}

// MarkStale flags path for revalidation.
func (t *Tracker) MarkStale(path string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stale[path] = time.Now()
}

// IsStale reports whether path needs revalidation.
func (t *Tracker) IsStale(path string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.stale[path]
	return ok
}

// StaleSince returns when path was marked stale, or false if it is fresh.
func (t *Tracker) StaleSince(path string) (time.Time, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	at, ok := t.stale[path]
	return at, ok
}

// Refresh clears the stale flag after the path has been re-rendered.
func (t *Tracker) Refresh(path string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.stale, path)
}
