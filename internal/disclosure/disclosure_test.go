package disclosure_test

import (
	"testing"

	"TheoVia/internal/disclosure"
)

func TestToggleIsIndependentPerItem(t *testing.T) {
	l := disclosure.NewList(3)

	l.Toggle(0)

	if !l.IsOpen(0) {
		t.Fatal("item 0 should be open after toggle")
	}
	if l.IsOpen(1) || l.IsOpen(2) {
		t.Fatal("toggling item 0 changed a sibling")
	}
}

func TestDoubleToggleIsIdentity(t *testing.T) {
	l := disclosure.NewList(2)

	l.Toggle(1)
	l.Toggle(1)

	if l.IsOpen(1) {
		t.Fatal("item open after double toggle")
	}
}

func TestMultipleItemsMayBeOpen(t *testing.T) {
	l := disclosure.NewList(4)

	l.Toggle(0)
	l.Toggle(2)

	snapshot := l.Snapshot()
	want := []bool{true, false, true, false}
	for i := range want {
		if snapshot[i] != want[i] {
			t.Fatalf("snapshot[%d] = %v, want %v", i, snapshot[i], want[i])
		}
	}
}

func TestOutOfRangeToggleIgnored(t *testing.T) {
	l := disclosure.NewList(2)

	l.Toggle(-1)
	l.Toggle(2)
	l.Toggle(99)

	if l.IsOpen(0) || l.IsOpen(1) {
		t.Fatal("out of range toggle changed state")
	}
	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", l.Len())
	}
}
