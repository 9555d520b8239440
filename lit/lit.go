// Package lit implements literals: a variable reference paired with a
// polarity.
package lit

import "fmt"

// Undef is the sentinel for "no literal". It is not Lit's zero value:
// Lit(0) is the positive literal of internal variable 0.
const Undef = Lit(-1)

// Lit is a literal represented by an integer. The sign of the literal is
// stored in the least significant bit and the variable index is obtained
// by a right shift. This encoding makes a literal and its negation adjacent
// under the natural integer order, which is what gives Lit a deterministic
// total order for free.
//
// Lit is internal: it addresses a 0-indexed variable slot inside a Solver,
// not the external (possibly sparse) variable ids a caller uses in
// AddClause.
type Lit int

// New returns the literal for internal variable v (0-indexed) with the
// given polarity.
func New(v int, neg bool) Lit {
	if neg {
		return Lit(v + v + 1)
	}
	return Lit(v + v)
}

// NewFromInt returns the literal for a signed DIMACS-style variable id i
// (1-indexed, negative for negation).
func NewFromInt(i int) Lit {
	if i < 0 {
		return New(-i-1, true)
	}
	return New(i-1, false)
}

// Not returns the literal's negation.
func (l Lit) Not() Lit {
	return Lit(l ^ 1)
}

// Sign reports whether the literal is negated.
func (l Lit) Sign() bool {
	return l&1 == 1
}

// Index returns the literal's internal (0-indexed) variable slot.
func (l Lit) Index() int {
	return int(l >> 1)
}

// Var returns the literal's external (1-indexed) variable id.
func (l Lit) Var() int {
	return int(l>>1) + 1
}

// Int returns the literal in signed DIMACS form.
func (l Lit) Int() int {
	if l.Sign() {
		return -l.Var()
	}
	return l.Var()
}

// String implements fmt.Stringer.
func (l Lit) String() string {
	if l.Sign() {
		return fmt.Sprintf("~%d", l.Var())
	}
	return fmt.Sprintf("%d", l.Var())
}
