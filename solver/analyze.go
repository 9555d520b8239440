package solver

import (
	"github.com/pkg/errors"
	"github.com/spjmurray/go-util/pkg/set"

	"github.com/ericr/verdict/lit"
)

// analyze performs first-UIP conflict analysis (spec.md §4.6): given the
// conflicting clause and the store at the current (non-zero) decision
// level d, it resolves backward along the trail until exactly one literal
// of the working clause remains at level d — the asserting literal — then
// reports the clause to learn and the level to backjump to.
//
// Unlike the teacher this is adapted from, analyze never mutates the
// store: it walks the trail read-only via a position index, leaving
// backjumping to backjump.go as spec.md's component diagram has it
// (ANALYZE → BACKJUMP → LEARN → ASSERT are distinct steps).
func analyze(conflict *Clause, store *Store) (*Clause, int) {
	level := store.Level()
	if level == 0 {
		panic(errors.New("invariant violated: analyze() invoked at decision level 0"))
	}

	working := append([]lit.Lit(nil), conflict.Lits()...)
	seen := seenSet(working)

	trail := store.Trail()
	pos := len(trail) - 1

	for countAtLevel(working, store, level) > 1 {
		for pos >= 0 && !(seen.Contains(trail[pos].Index()) && store.AntecedentAt(trail[pos].Index()) != nil) {
			pos--
		}
		if pos < 0 {
			panic(errors.New("invariant violated: no implied literal left to resolve during 1-UIP analysis"))
		}

		v := trail[pos].Index()
		pos--

		working = resolve(working, store.AntecedentAt(v).Lits(), v)
		seen = seenSet(working)
	}

	return assertingClause(working, store, level)
}

// seenSet returns the set of variables referenced by lits.
func seenSet(lits []lit.Lit) set.Set[int] {
	s := set.New[int]()
	for _, p := range lits {
		s.Add(p.Index())
	}
	return s
}

// countAtLevel counts how many of lits' variables were assigned at level.
func countAtLevel(lits []lit.Lit, store *Store, level int) int {
	n := 0
	for _, p := range lits {
		if store.LevelAt(p.Index()) == level {
			n++
		}
	}
	return n
}

// resolve returns the clause whose literals are the union of a and b's
// literals excluding any literal over variable v, duplicates collapsed
// (spec.md §4.6). Precondition: a and b each contain a literal over v, with
// opposite polarities. analyze only ever resolves over the implied variable
// it just found in both clauses; a violation panics as an invariant breach.
func resolve(a, b []lit.Lit, v int) []lit.Lit {
	inA, inB := lit.Undef, lit.Undef
	for _, p := range a {
		if p.Index() == v {
			inA = p
		}
	}
	for _, p := range b {
		if p.Index() == v {
			inB = p
		}
	}
	if inA == lit.Undef || inB != inA.Not() {
		panic(errors.Errorf("invariant violated: resolve() over variable %d without opposite polarities in both clauses", v+1))
	}

	seen := set.New[lit.Lit]()
	out := make([]lit.Lit, 0, len(a)+len(b))

	add := func(p lit.Lit) {
		if p.Index() == v {
			return
		}
		if seen.Contains(p) {
			return
		}
		seen.Add(p)
		out = append(out, p)
	}

	for _, p := range a {
		add(p)
	}
	for _, p := range b {
		add(p)
	}

	return out
}

// assertingClause packages the converged working clause: the backjump
// level is the second-highest level present among its literals, or 0 if
// none remain besides the level-d one (spec.md §4.6). The asserting
// literal itself isn't singled out positionally — after backjump.go pops
// the trail, the driver recomputes it with clauseStatus, which is simpler
// than preserving an index convention through newLearntClause's sort.
func assertingClause(working []lit.Lit, store *Store, level int) (*Clause, int) {
	sawLevel := false
	backjumpLevel := 0

	for _, p := range working {
		l := store.LevelAt(p.Index())
		switch {
		case l == level:
			sawLevel = true
		case l > backjumpLevel:
			backjumpLevel = l
		}
	}

	if !sawLevel {
		panic(errors.New("invariant violated: 1-UIP resolution produced no literal at the conflict level"))
	}

	return newLearntClause(working), backjumpLevel
}
