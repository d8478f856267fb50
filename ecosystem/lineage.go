package ecosystem

import "github.com/mbolaris/tankcore/components"

// rootParent is the sentinel parent ID for a fish with no recorded
// parent (initial spawn, or a remapped orphan), mirroring the
// original implementation's string "root" parent_id.
const rootParent components.ID = 0

// LineageRecord is one birth entry in the append-only lineage log.
type LineageRecord struct {
	ID         components.ID
	ParentID   components.ID // rootParent if none
	Generation int
	Algorithm  string
	ColorHue   float64
	BirthFrame int
}

// Lineage is an append-only log of birth records, pruned under a
// reference-aware policy: a record may only be dropped once it is no
// longer referenced as any other record's parent, so ancestry chains
// to currently-tracked descendants are never broken. Grounded directly
// on original_source/core/lineage_tracker.py's LineageTracker.
type Lineage struct {
	records    []LineageRecord
	maxSize    int
	orphanFixups int
}

// NewLineage builds a lineage log bounded at maxSize records.
func NewLineage(maxSize int) *Lineage {
	return &Lineage{maxSize: maxSize}
}

// RecordBirth appends one birth record and prunes if over capacity.
func (l *Lineage) RecordBirth(rec LineageRecord) {
	l.records = append(l.records, rec)
	l.pruneIfNeeded()
}

// pruneIfNeeded drops the oldest records that are not referenced as
// any other record's parent, until the log is back at maxSize. A
// record referenced as a parent is never dropped, even if it is the
// oldest, preserving every ancestry chain to a currently-tracked
// descendant.
func (l *Lineage) pruneIfNeeded() {
	if l.maxSize <= 0 || len(l.records) <= l.maxSize {
		return
	}
	referenced := make(map[components.ID]bool, len(l.records))
	for _, r := range l.records {
		referenced[r.ParentID] = true
	}

	excess := len(l.records) - l.maxSize
	kept := l.records[:0]
	removed := 0
	for _, r := range l.records {
		if removed < excess && !referenced[r.ID] {
			removed++
			continue
		}
		kept = append(kept, r)
	}
	l.records = kept
}

// Records returns the current lineage log, remapping any record whose
// ParentID no longer resolves to a tracked record (or root) onto root,
// and counting the remap as an orphan fixup for the diagnostic
// counter. alive reports which fish IDs are currently live, populating
// each returned record's IsAlive field.
func (l *Lineage) Records(alive map[components.ID]bool) []LineageView {
	valid := make(map[components.ID]bool, len(l.records)+1)
	valid[rootParent] = true
	for _, r := range l.records {
		valid[r.ID] = true
	}

	out := make([]LineageView, 0, len(l.records))
	for _, r := range l.records {
		v := LineageView{LineageRecord: r, IsAlive: alive[r.ID]}
		if !valid[v.ParentID] {
			l.orphanFixups++
			v.ParentID = rootParent
		}
		out = append(out, v)
	}
	return out
}

// OrphanFixups returns how many orphaned parent references have been
// remapped to root across the log's lifetime, a diagnostic counter for
// verifying ancestry closure after pruning.
func (l *Lineage) OrphanFixups() int { return l.orphanFixups }

// Len returns the current record count.
func (l *Lineage) Len() int { return len(l.records) }

// LineageView is a lineage record with its ParentID sanitized against
// the current log (orphans remapped to root) and liveness annotated.
type LineageView struct {
	LineageRecord
	IsAlive bool
}
