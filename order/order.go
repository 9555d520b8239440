// Package order selects which unassigned variable the CDCL driver decides
// on next.
//
// The teacher this package is adapted from (EricR-saturday's order.Order)
// keeps a binary heap ordered by VSIDS variable activity. Activity-based
// ordering is out of scope here (spec.md §1 Non-goals), so the heap is
// gone: Order instead walks variables in a fixed, deterministic order and
// returns the first one still unassigned. Determinism matters for
// reproducible search traces (spec.md's design note on variable iteration
// order) even though the policy itself is the simplest possible one.
package order

import "sort"

// Unassigned reports whether variable v currently has no value. Choose
// takes this as a callback rather than a concrete store type to avoid an
// import cycle: order is a leaf package that solver depends on.
type Unassigned func(v int) bool

// Order holds the fixed decision order over a formula's internal variable
// ids.
type Order struct {
	vars []int
}

// New returns an Order over vars, sorted ascending so Choose is
// deterministic regardless of the caller's iteration order over its
// variable set.
func New(vars []int) *Order {
	sorted := append([]int(nil), vars...)
	sort.Ints(sorted)

	return &Order{vars: sorted}
}

// Choose returns the first (smallest id) unassigned variable, or -1 if
// every variable already has a value.
func (o *Order) Choose(unassigned Unassigned) int {
	for _, v := range o.vars {
		if unassigned(v) {
			return v
		}
	}
	return -1
}
