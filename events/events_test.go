package events

import (
	"reflect"
	"testing"

	"github.com/mbolaris/tankcore/components"
)

func TestBusDrainResetsPending(t *testing.T) {
	b := NewBus()
	b.Emit(Event{Kind: Birth, EntityID: 1})
	b.Emit(Event{Kind: Death, EntityID: 2, Cause: CauseStarvation})
	if b.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", b.Len())
	}
	drained := b.Drain()
	if len(drained) != 2 {
		t.Fatalf("Drain() returned %d events, want 2", len(drained))
	}
	if b.Len() != 0 {
		t.Fatalf("Len() after Drain() = %d, want 0", b.Len())
	}
}

func TestBusDrainIsEmptyWithNoEvents(t *testing.T) {
	b := NewBus()
	if got := b.Drain(); len(got) != 0 {
		t.Fatalf("Drain() on empty bus = %v, want empty", got)
	}
}

func TestRingOverwritesOldestWhenFull(t *testing.T) {
	r := NewRing(3)
	for i := 0; i < 5; i++ {
		r.Push(Event{Kind: Feed, EntityID: components.ID(i)})
	}
	got := r.Recent()
	if len(got) != 3 {
		t.Fatalf("Recent() len = %d, want 3", len(got))
	}
	want := []components.ID{2, 3, 4}
	for i, e := range got {
		if e.EntityID != want[i] {
			t.Fatalf("Recent()[%d].EntityID = %d, want %d", i, e.EntityID, want[i])
		}
	}
}

func TestRingBelowCapacityReturnsInsertionOrder(t *testing.T) {
	r := NewRing(10)
	r.Push(Event{Kind: Birth, EntityID: 1})
	r.Push(Event{Kind: Birth, EntityID: 2})
	got := r.Recent()
	want := []components.ID{1, 2}
	if len(got) != 2 {
		t.Fatalf("Recent() len = %d, want 2", len(got))
	}
	for i, e := range got {
		if e.EntityID != want[i] {
			t.Fatalf("Recent()[%d].EntityID = %d, want %d", i, e.EntityID, want[i])
		}
	}
}

func TestRingClearEmpties(t *testing.T) {
	r := NewRing(4)
	r.Push(Event{Kind: Birth})
	r.Push(Event{Kind: Death})
	r.Clear()
	if r.Len() != 0 {
		t.Fatalf("Len() after Clear() = %d, want 0", r.Len())
	}
	if got := r.Recent(); len(got) != 0 {
		t.Fatalf("Recent() after Clear() = %v, want empty", got)
	}
}

func TestDeathCauseStringsAreStable(t *testing.T) {
	want := map[DeathCause]string{
		CauseStarvation:    "starvation",
		CauseOldAge:        "old_age",
		CausePredation:     "predation",
		CausePopulationCap: "population_cap",
		CauseUnknown:       "unknown",
	}
	for cause, s := range want {
		if got := cause.String(); got != s {
			t.Errorf("%v.String() = %q, want %q", cause, got, s)
		}
	}
}

func TestEventKindStringsCoverAllKinds(t *testing.T) {
	kinds := []Kind{Birth, Death, Feed, Predation, Poker}
	seen := make(map[string]bool)
	for _, k := range kinds {
		s := k.String()
		if s == "unknown" {
			t.Errorf("Kind %d stringified to unknown", k)
		}
		if seen[s] {
			t.Errorf("duplicate Kind string %q", s)
		}
		seen[s] = true
	}
	if !reflect.DeepEqual(len(seen), len(kinds)) {
		t.Fatalf("expected %d distinct kind strings, got %d", len(kinds), len(seen))
	}
}
