package visitor_test

import (
	"testing"
	"time"

	"TheoVia/internal/visitor"
)

var sections = []string{"hero", "pricing", "faq"}

func TestStoreReturnsSameStatePerVisitor(t *testing.T) {
	store := visitor.NewStore(time.Minute, sections, 3)

	a := store.Get("a")
	b := store.Get("b")

	if a == b {
		t.Fatal("different visitors share state")
	}
	if store.Get("a") != a {
		t.Fatal("same visitor got a new state on second access")
	}
}

func TestBeaconRevealsOnlyItsSection(t *testing.T) {
	store := visitor.NewStore(time.Minute, sections, 3)
	state := store.Get("a")

	for _, section := range sections {
		if state.Revealed(section) {
			t.Fatalf("section %s revealed before any beacon", section)
		}
	}

	state.MarkSeen("pricing")

	if !state.Revealed("pricing") {
		t.Fatal("pricing not revealed after beacon")
	}
	if state.Revealed("hero") || state.Revealed("faq") {
		t.Fatal("beacon for pricing leaked into a sibling section")
	}

	// Unknown sections are dropped, and unknown lookups render visible.
	state.MarkSeen("nonsense")
	if !state.Revealed("nonsense") {
		t.Fatal("unknown section should default to visible")
	}
}

func TestVisitorsAreIndependent(t *testing.T) {
	store := visitor.NewStore(time.Minute, sections, 3)

	a := store.Get("a")
	b := store.Get("b")

	a.MarkSeen("hero")
	a.FAQ().Toggle(1)

	if b.Revealed("hero") {
		t.Fatal("beacon from visitor a revealed a section for visitor b")
	}
	if b.FAQ().IsOpen(1) {
		t.Fatal("FAQ toggle from visitor a opened an item for visitor b")
	}
}

func TestExpiredStateIsDropped(t *testing.T) {
	store := visitor.NewStore(10*time.Millisecond, sections, 3)

	store.Get("a").FAQ().Toggle(0)
	time.Sleep(25 * time.Millisecond)

	// Any access prunes; the expired visitor gets a fresh mount.
	fresh := store.Get("a")
	if fresh.FAQ().IsOpen(0) {
		t.Fatal("expired visitor state survived the TTL")
	}
	if store.Len() != 1 {
		t.Fatalf("store holds %d sessions, want 1", store.Len())
	}
}

func TestNewIDIsUnique(t *testing.T) {
	if visitor.NewID() == visitor.NewID() {
		t.Fatal("two generated IDs collided")
	}
}
