package cmpsort

// IsSorted reports whether xs is in order under cmp: no element is
// immediately followed by one that precedes it.
func IsSorted[T any](xs []T, cmp Comparator[T]) bool {
	for i := 1; i < len(xs); i++ {
		if cmp(xs[i-1], xs[i]) == 1 {
			return false
		}
	}
	return true
}

// Equal reports whether xs and ys have the same length and pairwise
// equivalent elements under cmp.
func Equal[T any](xs, ys []T, cmp Comparator[T]) bool {
	if len(xs) != len(ys) {
		return false
	}
	for i := range xs {
		if cmp(xs[i], ys[i]) != 0 {
			return false
		}
	}
	return true
}
