package solver

import (
	"github.com/ericr/verdict/lit"
	"github.com/ericr/verdict/tribool"
)

// status is a clause's classification under the current store (spec.md
// §4.4).
type status int

const (
	satisfied status = iota
	unsatisfied
	unit
	unresolved
)

// clauseStatus classifies c under store and, when the status is unit,
// returns its unit literal. spec.md §9's open question flags that the
// original source's UNIT check (unassigned_count == 1 AND false_count ==
// length-1) is redundant with unassigned_count == 1 alone in a well-formed
// call; this implementation relies only on "exactly one unassigned and
// none satisfied", per the spec.
func clauseStatus(c *Clause, store *Store) (status, lit.Lit) {
	unassignedCount := 0
	unitLit := lit.Undef

	for _, p := range c.Lits() {
		switch store.litStatus(p) {
		case tribool.True:
			return satisfied, lit.Undef
		case tribool.Undef:
			unassignedCount++
			unitLit = p
		}
	}

	if unassignedCount == 0 {
		return unsatisfied, lit.Undef
	}
	if unassignedCount == 1 {
		return unit, unitLit
	}
	return unresolved, lit.Undef
}

// propagate runs whole-formula unit propagation (spec.md §4.4): it repeats
// full passes over the formula until a pass makes no change, assigning
// every UNIT clause's unit literal as it's found. It returns the first
// UNSATISFIED clause encountered, or nil once the store reaches a fixed
// point with no UNIT or UNSATISFIED clause.
//
// This replaces the teacher's two-watched-literal scheme (a queue of
// recently-falsified literals, each clause waking only the watchers it's
// subscribed to). Watched literals are an explicit Non-goal here (spec.md
// §1: "deliberately simplified to whole-clause scanning"), so there is no
// watch list and no propagation queue — every pass looks at every clause.
func propagate(f *Formula, store *Store) *Clause {
	for {
		changed := false

		for _, c := range f.Clauses() {
			st, p := clauseStatus(c, store)

			switch st {
			case unit:
				store.Assign(p, c)
				changed = true
			case unsatisfied:
				return c
			}
		}

		if !changed {
			return nil
		}
	}
}
