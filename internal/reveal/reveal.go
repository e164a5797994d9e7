// Package reveal implements the one-shot visibility flag behind the
// entrance animation of each page section. The flag starts hidden and
// flips exactly once, the first time its region is reported inside the
// viewport.
package reveal

import "sync"

// Observer is the host capability that reports viewport intersection
// for a named region. Observe registers interest and returns a
// deregistration func, which must tolerate being called more than once.
type Observer interface {
	Observe(region string, notify func(intersecting bool)) (stop func())
}

// Trigger holds the one-way visible flag for a single region. A nil
// observer means the capability is absent and the trigger degrades to
// always visible rather than failing.
type Trigger struct {
	mu      sync.Mutex
	visible bool
	stop    func()
}

func NewTrigger(region string, obs Observer) *Trigger {
	t := &Trigger{}
	if obs == nil {
		t.visible = true
		return t
	}
	t.stop = obs.Observe(region, t.observe)
	return t
}

// observe receives intersection events. Only the first intersecting
// event matters; the flag never downgrades when the region leaves the
// viewport again.
func (t *Trigger) observe(intersecting bool) {
	if !intersecting {
		return
	}
	t.mu.Lock()
	t.visible = true
	t.mu.Unlock()
}

func (t *Trigger) Visible() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.visible
}

// Close deregisters the trigger from its observer. Safe to call twice.
func (t *Trigger) Close() {
	t.mu.Lock()
	stop := t.stop
	t.stop = nil
	t.mu.Unlock()

	if stop != nil {
		stop()
	}
}
