// Package cmpsort sorts slices under a caller-supplied three-way comparator.
//
// All ordering policy enters through a Comparator; the algorithms never rely
// on a built-in order. MergeSorted and QuickSorted allocate their results and
// leave the input alone, QuickSort reorders the caller's slice in place.
package cmpsort

// A Comparator reports the relative order of a and b: -1 if a precedes b,
// 1 if a follows b, and 0 if the two are equivalent under this ordering
// (not necessarily equal as values). It must be consistent across calls and
// describe a total preorder over the element type; the sorts assume this
// and do not verify it.
type Comparator[T any] func(a, b T) int

// Ordered constrains to types with a built-in < order.
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~string
}

// Integer constrains to the built-in integer types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Ascending orders values lowest to highest by the natural order of T.
// It is the default policy; the *Ordered convenience wrappers fix it.
func Ascending[T Ordered](a, b T) int {
	if a < b {
		return -1
	}
	if b < a {
		return 1
	}
	return 0
}

// Descending orders values highest to lowest, the exact sign flip of
// Ascending on every pair.
func Descending[T Ordered](a, b T) int {
	if a < b {
		return 1
	}
	if b < a {
		return -1
	}
	return 0
}

// ByLastDigit orders integers by their final decimal digit only; values
// sharing a last digit compare equal regardless of magnitude. Go's %
// truncates toward zero, so a negative input contributes its negative
// remainder (-17 compares as -7); no normalization is applied.
func ByLastDigit[T Integer](a, b T) int {
	return Ascending(a%10, b%10)
}

// Reversed returns a comparator with the opposite order of cmp.
func Reversed[T any](cmp Comparator[T]) Comparator[T] {
	return func(a, b T) int { return -cmp(a, b) }
}
