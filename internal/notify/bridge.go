// Package notify reconciles tree store change events with self-triggered
// mutations. A compound repository operation (move then cleanup, remove
// then cleanup) produces a burst of physical tree events; the bridge
// coalesces the burst into one logical "bookmarks changed" notification
// so listeners refresh once.
package notify

import (
	"sync"

	"github.com/mangamark/mangamark/internal/tree"
)

// Bridge fans tree change events out to listeners, with operation-scoped
// suppression for compound mutations.
type Bridge struct {
	mu        sync.Mutex
	listeners map[int]func()
	next      int
	depth     int
	pending   bool
	cancel    func()
}

// NewBridge creates a bridge subscribed to the store's change events.
func NewBridge(store tree.Store) *Bridge {
	b := &Bridge{listeners: make(map[int]func())}
	b.cancel = store.Observe(b.handle)
	return b
}

// Close unsubscribes from the store.
func (b *Bridge) Close() {
	if b.cancel != nil {
		b.cancel()
		b.cancel = nil
	}
}

// Listen registers a change listener; the returned func cancels it.
func (b *Bridge) Listen(fn func()) (cancel func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	b.listeners[id] = fn

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.listeners, id)
	}
}

// Suppress opens a suppression scope for a compound operation. Events
// arriving while any scope is open are held back; the release func closes
// the scope and, once the outermost scope closes, emits a single
// notification if anything happened. Callers must defer release so errors
// never leave notifications suppressed. Release is idempotent.
func (b *Bridge) Suppress() (release func()) {
	b.mu.Lock()
	b.depth++
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			b.depth--
			fire := b.depth == 0 && b.pending
			if fire {
				b.pending = false
			}
			b.mu.Unlock()

			if fire {
				b.notify()
			}
		})
	}
}

func (b *Bridge) handle(tree.Event) {
	b.mu.Lock()
	if b.depth > 0 {
		b.pending = true
		b.mu.Unlock()
		return
	}
	b.mu.Unlock()

	b.notify()
}

func (b *Bridge) notify() {
	b.mu.Lock()
	fns := make([]func(), 0, len(b.listeners))
	for _, fn := range b.listeners {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
