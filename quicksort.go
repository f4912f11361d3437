package cmpsort

import "golang.org/x/exp/rand"

// QuickSorted returns a new slice holding the elements of xs ordered under
// cmp. xs is never modified. Each partition draws its pivot uniformly from
// rng, so a seeded source makes the whole sort deterministic. A single
// forward scan splits the elements into less/equal/greater buckets,
// preserving input order within each bucket; the equal bucket keeps an
// all-equivalent input from recursing forever.
func QuickSorted[T any](rng *rand.Rand, xs []T, cmp Comparator[T]) []T {
	if len(xs) <= 1 {
		return append([]T(nil), xs...)
	}
	pivot := xs[rng.Intn(len(xs))]
	var less, equal, greater []T
	for _, x := range xs {
		switch cmp(x, pivot) {
		case -1:
			less = append(less, x)
		case 1:
			greater = append(greater, x)
		default:
			equal = append(equal, x)
		}
	}
	out := QuickSorted(rng, less, cmp)
	out = append(out, equal...)
	return append(out, QuickSorted(rng, greater, cmp)...)
}

// QuickSort reorders xs in place so it is sorted under cmp and returns the
// same slice for chaining; no copy is made and equal elements may be
// reordered. The pivot is always the last element of the active range, so
// already-sorted input costs quadratic time; stack depth stays logarithmic
// regardless because only the smaller partition recurses.
func QuickSort[T any](xs []T, cmp Comparator[T]) []T {
	quickSort(xs, 0, len(xs)-1, cmp)
	return xs
}

func quickSort[T any](xs []T, lo, hi int, cmp Comparator[T]) {
	for lo < hi {
		p := partition(xs, lo, hi, cmp)
		if p-lo < hi-p {
			quickSort(xs, lo, p-1, cmp)
			lo = p + 1
		} else {
			quickSort(xs, p+1, hi, cmp)
			hi = p - 1
		}
	}
}

// partition applies the Lomuto scheme to xs[lo:hi+1] with xs[hi] as pivot
// and returns the pivot's final index. i bounds the region of elements that
// precede or equal the pivot; keys equal to the pivot are swapped into that
// region during the scan, so duplicates of the pivot key land left of its
// final slot.
func partition[T any](xs []T, lo, hi int, cmp Comparator[T]) int {
	pivot := xs[hi]
	i := lo - 1
	for j := lo; j < hi; j++ {
		if cmp(xs[j], pivot) != 1 {
			i++
			xs[i], xs[j] = xs[j], xs[i]
		}
	}
	xs[i+1], xs[hi] = xs[hi], xs[i+1]
	return i + 1
}
