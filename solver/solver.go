package solver

import (
	"fmt"

	"github.com/ericr/verdict/config"
	"github.com/ericr/verdict/lit"
	"github.com/ericr/verdict/order"
)

const (
	// VersionMajor is the solver's major version.
	VersionMajor = 1
	// VersionMinor is the solver's minor version.
	VersionMinor = 0
)

// Version returns the solver's version string.
func Version() string {
	return fmt.Sprintf("%d.%d", VersionMajor, VersionMinor)
}

// Solver is the CDCL SAT solver (spec.md §4.7). It owns a Formula (the
// original clauses plus any learned during search), an assignment Store
// (trail + per-variable records), and the decision order over the
// formula's variables.
//
// Non-goals dropped from the teacher this is adapted from: incremental
// solving under assumptions (so Solve takes no arguments — compare the
// teacher's Solve(ps []int)), multiple-model enumeration (the teacher's
// SolveMany), and the restart/VSIDS machinery that drove SolveMany's
// iterated calls in the first place.
type Solver struct {
	config *config.Config

	// userVars maps external (DIMACS) variable ids to internal (dense,
	// 0-indexed) ones; internalVars is the inverse.
	userVars     map[int]int
	internalVars map[int]int

	formula *Formula
	store   *Store
	order   *order.Order

	propagations int
	conflicts    int
	decisions    int
}

// New returns a new, empty Solver.
func New(c *config.Config) *Solver {
	return &Solver{
		config:       c,
		userVars:     map[int]int{},
		internalVars: map[int]int{},
		formula:      newFormula(),
		store:        newStore(),
	}
}

// AddClause adds an original clause to the formula, given as signed DIMACS-
// style external variable ids (0 terminators, if present, are dropped by
// the caller's parser before this is called). It always succeeds: an empty
// clause is a legal (if unsatisfiable) input, handled uniformly by the
// first propagate() call in Solve rather than detected here — adding a
// clause is not itself a preprocessing step.
func (s *Solver) AddClause(ps []int) bool {
	lits := make([]lit.Lit, 0, len(ps))
	for _, p := range ps {
		lits = append(lits, s.internalize(lit.NewFromInt(p)))
	}

	s.formula.AddOriginal(newClause(lits))

	return true
}

// Solve runs the CDCL main loop (spec.md §4.7) and returns the satisfying
// assignment (keyed by external variable id) when one exists.
func (s *Solver) Solve() (map[int]bool, bool) {
	s.order = order.New(s.formula.Variables())

	conflict := propagate(s.formula, s.store)
	s.propagations++
	if conflict != nil {
		s.conflicts++
		return nil, false
	}

	for len(s.store.Trail()) < s.formula.NVars() {
		s.store.BumpLevel()

		v := s.order.Choose(s.store.IsUnassigned)
		if v == -1 {
			break
		}

		s.store.Assign(lit.New(v, false), nil)
		s.decisions++

		for {
			conflict := propagate(s.formula, s.store)
			s.propagations++

			if conflict == nil {
				break
			}
			s.conflicts++

			if s.store.Level() == 0 {
				return nil, false
			}

			learned, backjumpLevel := analyze(conflict, s.store)
			backjump(s.store, backjumpLevel)
			s.formula.AddLearnt(learned)

			st, unitLit := clauseStatus(learned, s.store)
			if st != unit {
				panic(fmt.Errorf("invariant violated: learned clause %s is not unit after backjump to level %d", learned, backjumpLevel))
			}
			s.store.Assign(unitLit, learned)
		}
	}

	return s.model(), true
}

// model reads the completed assignment off the store, keyed by external
// variable id.
func (s *Solver) model() map[int]bool {
	out := make(map[int]bool, s.formula.NVars())
	for internal, external := range s.internalVars {
		out[external] = s.store.Value(lit.New(internal, false))
	}
	return out
}

// internalize returns p remapped to this solver's internal (dense,
// 0-indexed) variable space, allocating a fresh slot on first sight of an
// external variable id.
func (s *Solver) internalize(p lit.Lit) lit.Lit {
	if _, ok := s.userVars[p.Var()]; !ok {
		internal := len(s.userVars)
		s.userVars[p.Var()] = internal
		s.internalVars[internal] = p.Var()
		s.store.grow()
	}
	return lit.New(s.userVars[p.Var()], p.Sign())
}

// NVars returns the number of variables in the formula.
func (s *Solver) NVars() int { return s.formula.NVars() }

// NConstrs returns the number of original clauses.
func (s *Solver) NConstrs() int {
	n := 0
	for _, c := range s.formula.Clauses() {
		if !c.Learnt() {
			n++
		}
	}
	return n
}

// NLearnts returns the number of learnt clauses produced so far.
func (s *Solver) NLearnts() int {
	n := 0
	for _, c := range s.formula.Clauses() {
		if c.Learnt() {
			n++
		}
	}
	return n
}

// NPropagations returns the number of propagate() calls made.
func (s *Solver) NPropagations() int { return s.propagations }

// NConflicts returns the number of conflicts encountered.
func (s *Solver) NConflicts() int { return s.conflicts }

// NDecisions returns the number of free decisions made.
func (s *Solver) NDecisions() int { return s.decisions }

// Satisfies reports whether model satisfies every clause originally added
// to the solver. Used as a final sanity check (spec.md §4.3's
// satisfies(formula) contract) independent of the trail the solver used to
// find it.
func (s *Solver) Satisfies(model map[int]bool) bool {
	for _, c := range s.formula.Clauses() {
		ok := false
		for _, p := range c.Lits() {
			external := s.internalVars[p.Index()]
			if model[external] != p.Sign() {
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
