package cmpsort

// MergeSorted returns a new slice holding the elements of xs ordered under
// cmp. xs is never modified; a length ≤ 1 input yields an independent copy.
// The sort is stable: elements that compare equal keep their relative order
// from xs.
func MergeSorted[T any](xs []T, cmp Comparator[T]) []T {
	if len(xs) <= 1 {
		return append([]T(nil), xs...)
	}
	mid := len(xs) / 2
	left := MergeSorted(xs[:mid], cmp)
	right := MergeSorted(xs[mid:], cmp)
	return Merged(left, right, cmp)
}
