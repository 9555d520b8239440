package solver

import (
	"github.com/pkg/errors"

	"github.com/ericr/verdict/lit"
	"github.com/ericr/verdict/tribool"
)

// Store is the assignment store and trail (spec.md §3/§4.3): a mapping
// from (internal) variable to its assignment record, plus the chronological
// trail of assigned variables. It is implemented as dense arrays indexed by
// internal variable id rather than a map — spec.md §9 explicitly allows
// this ("a systems implementation may copy clause contents into the record
// or store clause indices... either choice satisfies the contract") and it
// is also how the teacher this is adapted from lays its own assigns/level/
// reason arrays out.
//
// A variable's antecedent is nil exactly when it was a free decision.
// spec.md §9 flags the source's use of a degenerate empty-clause value for
// this as a design wart and asks for a real sum type instead; a nil
// *Clause already gives us that "Decision | Implied(clause)" distinction
// without ever constructing a clause that means "no antecedent".
type Store struct {
	values []tribool.Tribool
	levels []int
	reason []*Clause
	trail  []lit.Lit
	level  int
}

func newStore() *Store {
	return &Store{}
}

// grow adds one more variable slot, called the first time a variable id is
// seen.
func (s *Store) grow() {
	s.values = append(s.values, tribool.Undef)
	s.levels = append(s.levels, -1)
	s.reason = append(s.reason, nil)
}

// NVars returns the number of variable slots the store has allocated.
func (s *Store) NVars() int {
	return len(s.values)
}

// litStatus peeks at a literal's three-valued truth without the panic-on-
// unassigned contract Value below has. clauseStatus (used by the unit
// propagator and by the driver's check of a freshly learned clause) needs
// to distinguish "false" from "unassigned", which value(literal)'s contract
// (spec.md §4.3) deliberately does not support — this internal helper is
// how that distinction is made available to it.
func (s *Store) litStatus(p lit.Lit) tribool.Tribool {
	v := s.values[p.Index()]
	if p.Sign() {
		return v.Not()
	}
	return v
}

// Value returns the Boolean truth of literal p under the current
// assignment. Panics (an invariant violation per spec.md §7) if p's
// variable has no value yet.
func (s *Store) Value(p lit.Lit) bool {
	v := s.litStatus(p)
	if v.Undef() {
		panic(errors.Errorf("invariant violated: value() called on unassigned literal %s", p))
	}
	return v.True()
}

// IsAssigned reports whether internal variable v has a value.
func (s *Store) IsAssigned(v int) bool {
	return !s.values[v].Undef()
}

// IsUnassigned reports whether internal variable v has no value yet. It
// implements order.Unassigned directly for Solver's decision step.
func (s *Store) IsUnassigned(v int) bool {
	return s.values[v].Undef()
}

// Assign records a new forced or decided assignment: literal p becomes
// true, with the given antecedent (nil for a decision). Pre: p's variable
// is not yet in the store.
func (s *Store) Assign(p lit.Lit, antecedent *Clause) {
	v := p.Index()
	if !s.values[v].Undef() {
		panic(errors.Errorf("invariant violated: assign() called on already-assigned variable %d", v+1))
	}

	s.values[v] = tribool.NewFromBool(!p.Sign())
	s.levels[v] = s.level
	s.reason[v] = antecedent
	s.trail = append(s.trail, p)
}

// Unassign removes the most recent trail entry. Pre: v is the variable at
// the top of the trail.
func (s *Store) Unassign(v int) {
	if len(s.trail) == 0 || s.trail[len(s.trail)-1].Index() != v {
		panic(errors.Errorf("invariant violated: unassign(%d) called out of trail order", v+1))
	}

	s.trail = s.trail[:len(s.trail)-1]
	s.values[v] = tribool.Undef
	s.levels[v] = -1
	s.reason[v] = nil
}

// Level returns the current decision level.
func (s *Store) Level() int { return s.level }

// SetLevel sets the current decision level directly (used by backjump.go).
func (s *Store) SetLevel(l int) { s.level = l }

// BumpLevel increments the current decision level.
func (s *Store) BumpLevel() { s.level++ }

// Trail returns the assignment trail in chronological order. The returned
// slice must not be mutated by callers.
func (s *Store) Trail() []lit.Lit { return s.trail }

// LevelAt returns the decision level at which internal variable v was
// assigned.
func (s *Store) LevelAt(v int) int { return s.levels[v] }

// AntecedentAt returns the clause that forced internal variable v's
// assignment, or nil if v was a decision (or is unassigned).
func (s *Store) AntecedentAt(v int) *Clause { return s.reason[v] }

// Satisfies reports whether every clause in f has at least one true
// literal under the current (assumed total) assignment.
func (s *Store) Satisfies(f *Formula) bool {
	for _, c := range f.Clauses() {
		ok := false
		for _, p := range c.Lits() {
			if s.Value(p) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}
