package assign

import (
	"fmt"
	"testing"
)

func emails(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("p%d@example.com", i)
	}
	return out
}

func TestReceiversNoSelfAssignment(t *testing.T) {
	for n := 2; n <= 10; n++ {
		in := emails(n)
		for run := 0; run < 200; run++ {
			perm := Receivers(in)
			for i, j := range perm {
				if i == j {
					t.Fatalf("n=%d run=%d: giver %d assigned to themselves", n, run, i)
				}
			}
		}
	}
}

func TestReceiversIsBijection(t *testing.T) {
	in := emails(7)
	for run := 0; run < 100; run++ {
		perm := Receivers(in)
		if len(perm) != len(in) {
			t.Fatalf("expected %d assignments, got %d", len(in), len(perm))
		}
		seen := make(map[int]bool, len(perm))
		for _, j := range perm {
			if j < 0 || j >= len(in) {
				t.Fatalf("receiver index %d out of range", j)
			}
			if seen[j] {
				t.Fatalf("receiver %d assigned twice", j)
			}
			seen[j] = true
		}
	}
}

func TestReceiversThreeAlwaysValid(t *testing.T) {
	in := emails(3)
	for run := 0; run < 500; run++ {
		perm := Receivers(in)
		for i, j := range perm {
			if in[i] == in[j] {
				t.Fatalf("self-assignment with 3 participants on run %d", run)
			}
		}
	}
}

func TestRotationHasNoFixedPoint(t *testing.T) {
	for n := 2; n <= 8; n++ {
		for _, offset := range []int{1, 2} {
			if n <= offset {
				continue
			}
			perm := rotation(n, offset)
			for i, j := range perm {
				if i == j {
					t.Errorf("rotation(%d, %d) has fixed point at %d", n, offset, i)
				}
			}
		}
	}
}

func TestSelfFree(t *testing.T) {
	in := emails(4)
	if selfFree(in, []int{0, 2, 3, 1}) {
		t.Error("permutation with fixed point at 0 reported as self-free")
	}
	if !selfFree(in, []int{1, 2, 3, 0}) {
		t.Error("full cycle reported as having a self-match")
	}
}
