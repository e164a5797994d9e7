// Package disclosure tracks the open/closed state of the expandable FAQ
// entries. Items are fully independent: opening one never closes
// another, and any number may be open at once.
package disclosure

import "sync"

// List holds one open/closed flag per FAQ item, all starting closed.
type List struct {
	mu   sync.Mutex
	open []bool
}

func NewList(items int) *List {
	if items < 0 {
		items = 0
	}
	return &List{open: make([]bool, items)}
}

func (l *List) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.open)
}

// Toggle flips item i. Indexes outside the list are ignored; a stale
// form post is not worth an error page.
func (l *List) Toggle(i int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if i < 0 || i >= len(l.open) {
		return
	}
	l.open[i] = !l.open[i]
}

func (l *List) IsOpen(i int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if i < 0 || i >= len(l.open) {
		return false
	}
	return l.open[i]
}

// Snapshot copies the current flags for rendering.
func (l *List) Snapshot() []bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]bool, len(l.open))
	copy(out, l.open)
	return out
}
