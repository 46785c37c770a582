package client

import (
	"errors"
	"sync"
)

// ErrToggleInFlight reports that a toggle request is already running.
var ErrToggleInFlight = errors.New("toggle already in flight")

// ToggleGuard serializes optimistic toggles (follow, attend, volunteer).
// Responses to rapid repeated clicks can arrive out of order, so while one
// request is in flight further attempts are refused instead of queued;
// the control stays disabled until the outcome is known and the caller
// re-renders from the response.
type ToggleGuard struct {
	mu   sync.Mutex
	busy bool
}

// Do runs fn unless a previous toggle is still in flight, in which case
// it returns ErrToggleInFlight without side effects.
func (g *ToggleGuard) Do(fn func() error) error {
	g.mu.Lock()
	if g.busy {
		g.mu.Unlock()
		return ErrToggleInFlight
	}
	g.busy = true
	g.mu.Unlock()

	defer func() {
		g.mu.Lock()
		g.busy = false
		g.mu.Unlock()
	}()
	return fn()
}
