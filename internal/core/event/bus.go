package event

import (
	"reflect"
	"sync"
)

type queued struct {
	t  reflect.Type
	ev any
}

// Bus is a double-buffered event bus. Events emitted while actors step are
// held in the back buffer; Flush (run at the output phase) swaps buffers and
// delivers them in emission order, so collaborators observe one tick's cues
// only after every actor has acted.
type Bus struct {
	mu       sync.Mutex // only protects handler registration
	front    []queued
	back     []queued
	handlers map[reflect.Type][]func(any)
}

func NewBus() *Bus {
	return &Bus{
		front:    make([]queued, 0, 32),
		back:     make([]queued, 0, 32),
		handlers: make(map[reflect.Type][]func(any)),
	}
}

// Emit queues an event for the next Flush.
func Emit[T any](b *Bus, event T) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	b.back = append(b.back, queued{t: t, ev: event})
}

// Subscribe registers a typed handler for events of type T.
func Subscribe[T any](b *Bus, fn func(T)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	t := reflect.TypeOf((*T)(nil)).Elem()
	b.handlers[t] = append(b.handlers[t], func(ev any) { fn(ev.(T)) })
}

// Pending returns how many events wait for the next Flush.
func (b *Bus) Pending() int { return len(b.back) }

// Flush rotates back->front and dispatches the front buffer. Events emitted
// by handlers during Flush land in the (new) back buffer.
func (b *Bus) Flush() {
	b.front, b.back = b.back, b.front[:0]
	for _, q := range b.front {
		for _, h := range b.handlers[q.t] {
			h(q.ev)
		}
	}
	b.front = b.front[:0]
}

// Discard drops every pending event (used when a level is torn down).
func (b *Bus) Discard() {
	b.back = b.back[:0]
}
