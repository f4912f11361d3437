package cmpsort

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestMergeSorted(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		cmp  Comparator[int]
		want []int
	}{
		{"Ascending", []int{5, 3, 1, 4, 2}, Ascending[int], []int{1, 2, 3, 4, 5}},
		{"Descending", []int{5, 3, 1, 4, 2}, Descending[int], []int{5, 4, 3, 2, 1}},
		{"ByLastDigit", []int{322, 125, 523}, ByLastDigit[int], []int{322, 523, 125}},
		{"AlreadySorted", []int{1, 2, 3, 4}, Ascending[int], []int{1, 2, 3, 4}},
		{"AllEqual", []int{7, 7, 7}, Ascending[int], []int{7, 7, 7}},
		{"Single", []int{9}, Ascending[int], []int{9}},
		{"Empty", nil, Ascending[int], nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := MergeSorted(tc.in, tc.cmp)
			if diff := cmp.Diff(tc.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("MergeSorted(%v): got - want: %v", tc.in, diff)
			}
		})
	}
}

func TestMergeSortedStable(t *testing.T) {
	in := []pair{{1, "a"}, {1, "b"}}
	want := []pair{{1, "a"}, {1, "b"}}
	if diff := cmp.Diff(want, MergeSorted(in, byKey)); diff != "" {
		t.Errorf("got - want: %v", diff)
	}

	in = []pair{{2, "a"}, {1, "b"}, {2, "c"}, {1, "d"}, {2, "e"}}
	want = []pair{{1, "b"}, {1, "d"}, {2, "a"}, {2, "c"}, {2, "e"}}
	if diff := cmp.Diff(want, MergeSorted(in, byKey)); diff != "" {
		t.Errorf("got - want: %v", diff)
	}
}

func TestMergeSortedDoesNotMutate(t *testing.T) {
	in := []int{5, 3, 1, 4, 2}
	MergeSorted(in, Ascending[int])
	if diff := cmp.Diff([]int{5, 3, 1, 4, 2}, in); diff != "" {
		t.Errorf("input changed: %v", diff)
	}
}

func TestMergeSortedIdempotent(t *testing.T) {
	once := MergeSorted([]int{5, 3, 1, 4, 2, 2, 5}, Ascending[int])
	twice := MergeSorted(once, Ascending[int])
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("resorting a sorted slice changed it: %v", diff)
	}
}

func TestMergeSortedOrdered(t *testing.T) {
	got := MergeSortedOrdered([]string{"pear", "apple", "fig"})
	want := []string{"apple", "fig", "pear"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("got - want: %v", diff)
	}
}
