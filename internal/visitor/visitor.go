// Package visitor keeps the ephemeral per-visitor page state: which
// sections have already played their entrance animation and which FAQ
// entries are open. Everything lives in memory and expires after a
// quiet period; nothing is ever persisted.
package visitor

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	"TheoVia/internal/disclosure"
	"TheoVia/internal/reveal"
)

// State is one visitor's mounted page. It implements reveal.Observer by
// forwarding visibility beacons from the browser to the per-section
// triggers.
type State struct {
	mu       sync.Mutex
	notify   map[string]func(intersecting bool)
	triggers map[string]*reveal.Trigger
	faq      *disclosure.List
}

func newState(sections []string, faqItems int) *State {
	s := &State{
		notify:   make(map[string]func(bool), len(sections)),
		triggers: make(map[string]*reveal.Trigger, len(sections)),
		faq:      disclosure.NewList(faqItems),
	}
	for _, section := range sections {
		s.triggers[section] = reveal.NewTrigger(section, s)
	}
	return s
}

// Observe implements reveal.Observer over beacon events.
func (s *State) Observe(region string, notify func(intersecting bool)) (stop func()) {
	s.mu.Lock()
	s.notify[region] = notify
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.notify, region)
		s.mu.Unlock()
	}
}

// MarkSeen delivers a "section entered the viewport" beacon. Unknown
// regions are ignored.
func (s *State) MarkSeen(region string) {
	s.mu.Lock()
	notify := s.notify[region]
	s.mu.Unlock()

	if notify != nil {
		notify(true)
	}
}

// Revealed reports whether the section's entrance animation has fired
// for this visitor. Sections without a trigger render visible.
func (s *State) Revealed(region string) bool {
	s.mu.Lock()
	trigger := s.triggers[region]
	s.mu.Unlock()

	if trigger == nil {
		return true
	}
	return trigger.Visible()
}

func (s *State) FAQ() *disclosure.List {
	return s.faq
}

// Close deregisters every trigger. Called when the state expires.
func (s *State) Close() {
	s.mu.Lock()
	triggers := make([]*reveal.Trigger, 0, len(s.triggers))
	for _, t := range s.triggers {
		triggers = append(triggers, t)
	}
	s.mu.Unlock()

	for _, t := range triggers {
		t.Close()
	}
}

type entry struct {
	state    *State
	lastSeen time.Time
}

// Store maps visitor IDs to their page state. Expired entries are
// pruned opportunistically on access; expiry stands in for the page
// unmount an HTTP server never gets told about.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*entry
	ttl      time.Duration
	sections []string
	faqItems int
	now      func() time.Time
}

func NewStore(ttl time.Duration, sections []string, faqItems int) *Store {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &Store{
		sessions: make(map[string]*entry),
		ttl:      ttl,
		sections: sections,
		faqItems: faqItems,
		now:      time.Now,
	}
}

// Get returns the state for id, creating a fresh one if the visitor is
// new or their previous state has expired.
func (st *Store) Get(id string) *State {
	now := st.now()

	st.mu.Lock()
	defer st.mu.Unlock()

	st.prune(now)

	e, ok := st.sessions[id]
	if !ok {
		e = &entry{state: newState(st.sections, st.faqItems)}
		st.sessions[id] = e
	}
	e.lastSeen = now
	return e.state
}

// prune drops expired sessions. Caller holds the lock.
func (st *Store) prune(now time.Time) {
	for id, e := range st.sessions {
		if now.Sub(e.lastSeen) > st.ttl {
			e.state.Close()
			delete(st.sessions, id)
		}
	}
}

// Len reports the number of live sessions.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// NewID returns a fresh random visitor ID.
func NewID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the process is in real trouble.
		panic("visitor: cannot generate ID: " + err.Error())
	}
	return hex.EncodeToString(buf)
}
