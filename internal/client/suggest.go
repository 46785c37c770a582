package client

import (
	"context"
	"sync"
	"time"

	"github.com/sahyog-app/sahyog/internal/model"
)

// DefaultSuggestWindow is the quiescence window before a suggest request
// fires.
const DefaultSuggestWindow = 300 * time.Millisecond

// Suggester debounces typeahead input. Each Input resets the quiescence
// timer; the suggest request fires only once typing pauses. Responses
// carry the sequence number of the input that caused them, and anything
// but the latest sequence is discarded on arrival. In-flight requests for
// stale input are never cancelled, only ignored: suggestions are advisory
// and the race is accepted.
type Suggester struct {
	client  *Client
	window  time.Duration
	deliver func(query string, items []model.Suggestion)

	mu    sync.Mutex
	seq   uint64
	timer *time.Timer
}

// NewSuggester creates a suggester that calls deliver with the results of
// the most recent input. A zero window uses DefaultSuggestWindow.
func NewSuggester(client *Client, window time.Duration, deliver func(query string, items []model.Suggestion)) *Suggester {
	if window <= 0 {
		window = DefaultSuggestWindow
	}
	return &Suggester{client: client, window: window, deliver: deliver}
}

// Input registers a keystroke's worth of query text. Empty input cancels
// any pending dispatch and delivers an empty result immediately.
func (s *Suggester) Input(ctx context.Context, text string) {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	if text == "" {
		s.mu.Unlock()
		s.deliver("", nil)
		return
	}

	s.timer = time.AfterFunc(s.window, func() {
		s.fire(ctx, seq, text)
	})
	s.mu.Unlock()
}

// Stop cancels any pending dispatch.
func (s *Suggester) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.seq++ // orphan any in-flight response
}

func (s *Suggester) fire(ctx context.Context, seq uint64, text string) {
	if !s.current(seq) {
		return
	}

	items, err := s.client.Suggest(ctx, text)
	if err != nil {
		// Advisory data: a failed suggest call is dropped silently.
		return
	}

	if !s.current(seq) {
		return
	}
	s.deliver(text, items)
}

func (s *Suggester) current(seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return seq == s.seq
}
