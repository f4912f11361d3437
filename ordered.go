package cmpsort

import "golang.org/x/exp/rand"

// Convenience forms fixing the default Ascending policy for element types
// with a built-in order.

func MergeSortedOrdered[T Ordered](xs []T) []T {
	return MergeSorted(xs, Ascending[T])
}

func QuickSortedOrdered[T Ordered](rng *rand.Rand, xs []T) []T {
	return QuickSorted(rng, xs, Ascending[T])
}

func QuickSortOrdered[T Ordered](xs []T) []T {
	return QuickSort(xs, Ascending[T])
}
