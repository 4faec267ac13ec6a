// Package events is the in-process publish/subscribe mediator between the
// application state and everything that reacts to it.
//
// Dispatch is synchronous and depth-first: Emit returns only after every
// matching handler has run, and a handler that emits re-enters the bus
// immediately. There is no queue and no cycle detection.
package events

import (
	"regexp"
	"sync"
)

type Handler func(ev Event)

// Subscription identifies one registration. The zero value matches nothing.
type Subscription struct {
	id uint64
}

type registration struct {
	id      uint64
	kind    Kind
	pattern *regexp.Regexp
	handler Handler
}

func (r registration) matches(kind Kind) bool {
	if r.pattern != nil {
		return r.pattern.MatchString(string(kind))
	}
	return r.kind == kind
}

type Bus struct {
	mu     sync.RWMutex
	nextId uint64
	regs   []registration
}

func NewBus() *Bus {
	return &Bus{}
}

// On registers handler for the exact kind.
func (b *Bus) On(kind Kind, handler Handler) Subscription {
	return b.add(registration{kind: kind, handler: handler})
}

// OnMatch registers handler for every kind matching a wildcard pattern.
// A pattern without a wildcard behaves like On.
func (b *Bus) OnMatch(pattern string, handler Handler) Subscription {
	if !IsPattern(pattern) {
		return b.On(Kind(pattern), handler)
	}
	return b.add(registration{pattern: compilePattern(pattern), handler: handler})
}

// OnAll registers handler for every event.
func (b *Bus) OnAll(handler Handler) Subscription {
	return b.OnMatch(Wildcard, handler)
}

func (b *Bus) add(r registration) Subscription {
	if r.handler == nil {
		return Subscription{}
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextId++
	r.id = b.nextId
	b.regs = append(b.regs, r)
	return Subscription{id: r.id}
}

// Off removes a registration. Unknown or already removed subscriptions are ignored.
func (b *Bus) Off(sub Subscription) {
	if sub.id == 0 {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, r := range b.regs {
		if r.id == sub.id {
			b.regs = append(b.regs[:i:i], b.regs[i+1:]...)
			return
		}
	}
}

// Emit calls, in registration order, every handler whose subscription
// matches ev.Kind(). Handlers registered or removed while an emission is in
// progress take effect from the next Emit.
func (b *Bus) Emit(ev Event) {
	if ev == nil {
		return
	}
	b.mu.RLock()
	regs := b.regs
	b.mu.RUnlock()

	kind := ev.Kind()
	for _, r := range regs {
		if r.matches(kind) {
			r.handler(ev)
		}
	}
}

// Len returns the number of registrations.
func (b *Bus) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.regs)
}

// Subscribe registers fn for kind with the concrete payload type T.
// Events of that kind carrying another payload type are skipped.
func Subscribe[T Event](b *Bus, kind Kind, fn func(T)) Subscription {
	return b.On(kind, func(ev Event) {
		if payload, ok := ev.(T); ok {
			fn(payload)
		}
	})
}

// Emitter emits a prepared event. Transforms passed at call time are
// applied after the ones fixed by Trigger.
type Emitter[T Event] func(transforms ...func(T) T)

// Trigger returns an Emitter for base. Every call emits a copy of base
// merged with the Trigger transforms and then the call-time ones.
func Trigger[T Event](b *Bus, base T, transforms ...func(T) T) Emitter[T] {
	return func(extra ...func(T) T) {
		ev := base
		for _, t := range transforms {
			ev = t(ev)
		}
		for _, t := range extra {
			ev = t(ev)
		}
		b.Emit(ev)
	}
}
