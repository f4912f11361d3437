package cmpsort

// Merged combines two slices already sorted under cmp into one sorted slice
// in linear time. On a tie the element from xs is emitted before the element
// from ys; together with each input keeping its internal order this makes
// the merge stable. Neither input is modified.
func Merged[T any](xs, ys []T, cmp Comparator[T]) []T {
	out := make([]T, 0, len(xs)+len(ys))
	i, j := 0, 0
	for i < len(xs) && j < len(ys) {
		switch cmp(xs[i], ys[j]) {
		case -1:
			out = append(out, xs[i])
			i++
		case 1:
			out = append(out, ys[j])
			j++
		default:
			out = append(out, xs[i], ys[j])
			i++
			j++
		}
	}
	out = append(out, xs[i:]...)
	return append(out, ys[j:]...)
}
