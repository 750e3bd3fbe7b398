package assistant

import "sync"

// PendingGuard allows at most one in-flight generation per key, the server
// side of a disabled "generate" button. A blocked caller is rejected, not queued.
type PendingGuard struct {
	mu      sync.Mutex
	pending map[string]struct{}
}

// NewPendingGuard returns an empty guard.
func NewPendingGuard() *PendingGuard {
	return &PendingGuard{pending: make(map[string]struct{})}
}

// Acquire marks key as busy. It returns a release func and true, or nil and
// false if key already has a generation in flight.
func (g *PendingGuard) Acquire(key string) (release func(), ok bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.pending[key]; busy {
		return nil, false
	}
	g.pending[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.pending, key)
			g.mu.Unlock()
		})
	}, true
}

// Pending reports whether key has a generation in flight.
func (g *PendingGuard) Pending(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, busy := g.pending[key]
	return busy
}
