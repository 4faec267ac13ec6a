package services

import "sync"

// Turn serializes access to the session state. Every mutation of AppState
// and the dispatch it causes run inside exactly one Run call; blocking work
// such as network calls happens between turns.
type Turn struct {
	mu sync.Mutex
}

func (t *Turn) Run(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fn()
}
