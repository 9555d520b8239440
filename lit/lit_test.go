package lit

import "testing"

func TestNewFromInt(t *testing.T) {
	if lit := NewFromInt(12); lit.Var() != 12 {
		t.Fatalf("TestNewFromInt() failed, got: %d", lit.Var())
	}
	if lit := NewFromInt(-12); lit.Var() != 12 {
		t.Fatalf("TestNewFromInt() failed, got: %d", lit.Var())
	}
	if lit := NewFromInt(-12); !lit.Sign() {
		t.Fatalf("TestNewFromInt() failed, sign not negated")
	}
}

func TestNot(t *testing.T) {
	if lit := New(12, false).Not(); lit != New(12, true) {
		t.Fatalf("TestNot() failed, got: %d", lit.Var())
	}
	if lit := New(12, false).Not().Not(); lit != New(12, false) {
		t.Fatalf("TestNot() double negation did not round-trip")
	}
}

func TestSign(t *testing.T) {
	if lit := New(12, true); lit.Sign() != true {
		t.Fatalf("TestSign() failed, got: %d", lit.Var())
	}
	if lit := New(12, false); lit.Sign() != false {
		t.Fatalf("TestSign() failed, got: %d", lit.Var())
	}
}

func TestVar(t *testing.T) {
	if lit := New(23, false); lit.Var() != 24 {
		t.Fatalf("TestVar() failed: %d", lit.Var())
	}
	if lit := New(23, true); lit.Var() != 24 {
		t.Fatalf("TestVar() failed: %d", lit.Var())
	}
}

func TestInt(t *testing.T) {
	if lit := NewFromInt(5); lit.Int() != 5 {
		t.Fatalf("TestInt() failed, got: %d", lit.Int())
	}
	if lit := NewFromInt(-5); lit.Int() != -5 {
		t.Fatalf("TestInt() failed, got: %d", lit.Int())
	}
}

func TestComplementaryAdjacency(t *testing.T) {
	p := New(3, false)
	if p.Not() != p+1 {
		t.Fatalf("complementary literals are not adjacent under Lit's order")
	}
}
