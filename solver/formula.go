package solver

import "github.com/spjmurray/go-util/pkg/set"

// Formula is an ordered, append-only sequence of clauses plus the set of
// (internal) variables appearing in the original clauses. Learned clauses
// only ever reference variables already in that set (spec.md §3: "the
// variable set does not grow when learned clauses are added"), so Formula
// only grows vars from AddOriginal, never from AddLearnt.
type Formula struct {
	clauses []*Clause
	vars    set.Set[int]
}

func newFormula() *Formula {
	return &Formula{vars: set.New[int]()}
}

// AddOriginal appends an original clause and records its variables.
func (f *Formula) AddOriginal(c *Clause) {
	f.clauses = append(f.clauses, c)
	for _, p := range c.Lits() {
		f.vars.Add(p.Index())
	}
}

// AddLearnt appends a learnt clause without touching the variable set.
func (f *Formula) AddLearnt(c *Clause) {
	f.clauses = append(f.clauses, c)
}

// Clauses returns the formula's clauses in insertion order, which
// determines (but does not affect the correctness of) propagation scan
// order.
func (f *Formula) Clauses() []*Clause {
	return f.clauses
}

// NVars returns the number of distinct variables in the original clauses.
func (f *Formula) NVars() int {
	return f.vars.Len()
}

// Variables returns the formula's internal variable ids in no particular
// order; callers that need determinism (order.New) must sort them.
func (f *Formula) Variables() []int {
	vars := make([]int, 0, f.vars.Len())
	for v := range f.vars.All() {
		vars = append(vars, v)
	}
	return vars
}
