package solver

import (
	"sort"
	"strings"

	"github.com/ericr/verdict/lit"
)

// Clause is an unordered collection of distinct literals. Length zero is
// the empty clause: spec.md reserves it for the derived-⊥ result of
// conflict analysis and for an unsatisfiable original clause. It is never
// used as a "no antecedent" sentinel — assignment.go uses a nil *Clause
// for that, so the empty Clause value is never overloaded with a second
// meaning (see spec.md §9's design note on this exact hazard).
//
// Unlike the teacher this is adapted from, Clause carries no back-pointer
// to a Solver and no watch-list/activity bookkeeping: propagation here
// recomputes each clause's status by a full scan (propagate.go) rather
// than maintaining two watched literals per clause, and learnt-clause
// activity only existed to drive the VSIDS/clause-reduction heuristics
// this solver doesn't implement (spec.md §1 Non-goals).
type Clause struct {
	lits   []lit.Lit
	learnt bool
}

// newClause builds an original (non-learnt) clause, removing exact
// duplicate literals. Tautologies (both polarities of a variable present)
// are left in place rather than special-cased: such a clause is always
// SATISFIED once either literal is assigned, which propagate.go's status
// computation already handles with no extra logic, so dropping it here
// would just be unneeded preprocessing (out of scope per spec.md §1).
func newClause(lits []lit.Lit) *Clause {
	c := &Clause{lits: dedupeLiterals(lits)}
	sort.Sort(c)

	return c
}

// newLearntClause builds a clause from the output of resolve (analyze.go),
// which is already duplicate-free by construction.
func newLearntClause(lits []lit.Lit) *Clause {
	c := &Clause{lits: lits, learnt: true}
	sort.Sort(c)

	return c
}

func dedupeLiterals(lits []lit.Lit) []lit.Lit {
	seen := make(map[lit.Lit]bool, len(lits))
	out := make([]lit.Lit, 0, len(lits))

	for _, p := range lits {
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}

	return out
}

// Len returns the number of literals in the clause.
func (c *Clause) Len() int {
	return len(c.lits)
}

// Lits returns the clause's literals. Callers must not mutate the
// returned slice.
func (c *Clause) Lits() []lit.Lit {
	return c.lits
}

// Learnt reports whether the clause was derived during conflict analysis
// rather than supplied in the original formula.
func (c *Clause) Learnt() bool {
	return c.learnt
}

// String implements fmt.Stringer.
func (c *Clause) String() string {
	parts := make([]string, len(c.lits))
	for i, p := range c.lits {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ∨ ")
}

// Less and Swap implement sort.Interface together with Len, giving every
// clause a deterministic literal order (spec.md §3: literal ordering is
// "implementation-defined but deterministic").
func (c *Clause) Less(i, j int) bool { return c.lits[i] < c.lits[j] }
func (c *Clause) Swap(i, j int)      { c.lits[i], c.lits[j] = c.lits[j], c.lits[i] }
