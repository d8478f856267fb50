package ecosystem

import (
	"testing"

	"github.com/mbolaris/tankcore/components"
)

func TestLineageRecordsAnnotatesLiveness(t *testing.T) {
	l := NewLineage(100)
	l.RecordBirth(LineageRecord{ID: 1, ParentID: rootParent, BirthFrame: 0})
	l.RecordBirth(LineageRecord{ID: 2, ParentID: 1, BirthFrame: 10})

	alive := map[components.ID]bool{2: true}
	views := l.Records(alive)
	if len(views) != 2 {
		t.Fatalf("Records() len = %d, want 2", len(views))
	}
	if views[0].IsAlive {
		t.Fatalf("record 1 marked alive, want dead")
	}
	if !views[1].IsAlive {
		t.Fatalf("record 2 marked dead, want alive")
	}
}

func TestLineageRemapsOrphanedParentToRoot(t *testing.T) {
	l := NewLineage(100)
	// Record 2's parent (99) was never itself recorded: an orphan.
	l.RecordBirth(LineageRecord{ID: 2, ParentID: 99, BirthFrame: 5})

	views := l.Records(map[components.ID]bool{2: true})
	if views[0].ParentID != rootParent {
		t.Fatalf("ParentID = %d, want rootParent after orphan remap", views[0].ParentID)
	}
	if l.OrphanFixups() != 1 {
		t.Fatalf("OrphanFixups() = %d, want 1", l.OrphanFixups())
	}
}

func TestLineagePruneKeepsReferencedParentsOverCapacity(t *testing.T) {
	l := NewLineage(2)
	l.RecordBirth(LineageRecord{ID: 1, ParentID: rootParent, BirthFrame: 0})
	l.RecordBirth(LineageRecord{ID: 2, ParentID: 1, BirthFrame: 1})
	// Pushes the log over capacity (3 > 2); record 1 is referenced as
	// record 2's parent, so pruning must not drop it even though it is
	// the oldest entry.
	l.RecordBirth(LineageRecord{ID: 3, ParentID: rootParent, BirthFrame: 2})

	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 after pruning to capacity", l.Len())
	}

	views := l.Records(map[components.ID]bool{})
	for _, v := range views {
		if v.ID == 1 {
			return
		}
	}
	t.Fatalf("record 1 was pruned despite being referenced as a parent: %+v", views)
}

func TestLineagePruneDropsUnreferencedOldestFirst(t *testing.T) {
	l := NewLineage(1)
	l.RecordBirth(LineageRecord{ID: 1, ParentID: rootParent, BirthFrame: 0})
	l.RecordBirth(LineageRecord{ID: 2, ParentID: rootParent, BirthFrame: 1})

	if l.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", l.Len())
	}
	views := l.Records(map[components.ID]bool{})
	if len(views) != 1 || views[0].ID != 2 {
		t.Fatalf("surviving record = %+v, want only record 2 (unreferenced, oldest dropped)", views)
	}
}
