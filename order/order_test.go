package order

import "testing"

func TestChoosePicksSmallestUnassigned(t *testing.T) {
	assigned := map[int]bool{0: true, 2: true}
	o := New([]int{2, 0, 1, 3})

	if v := o.Choose(func(v int) bool { return !assigned[v] }); v != 1 {
		t.Fatalf("Choose() = %d, want 1", v)
	}
}

func TestChooseReturnsMinusOneWhenComplete(t *testing.T) {
	o := New([]int{0, 1, 2})

	if v := o.Choose(func(v int) bool { return false }); v != -1 {
		t.Fatalf("Choose() = %d, want -1", v)
	}
}

func TestChooseIsOrderIndependent(t *testing.T) {
	assigned := map[int]bool{}
	a := New([]int{5, 1, 9, 3})
	b := New([]int{1, 3, 5, 9})

	unassigned := func(v int) bool { return !assigned[v] }

	if a.Choose(unassigned) != b.Choose(unassigned) {
		t.Fatalf("Choose() depends on construction order")
	}
}
