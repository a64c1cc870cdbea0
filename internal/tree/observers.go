package tree

import "sync"

// observerHub fans out change events; embedded by both store backends.
type observerHub struct {
	mu   sync.Mutex
	fns  map[int]func(Event)
	next int
}

func (h *observerHub) Observe(fn func(Event)) (cancel func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.fns == nil {
		h.fns = make(map[int]func(Event))
	}
	id := h.next
	h.next++
	h.fns[id] = fn

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.fns, id)
	}
}

func (h *observerHub) emit(ev Event) {
	h.mu.Lock()
	fns := make([]func(Event), 0, len(h.fns))
	for _, fn := range h.fns {
		fns = append(fns, fn)
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}
