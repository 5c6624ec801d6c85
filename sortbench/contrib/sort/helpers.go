package sort

import "cmp"

// samplePivot returns the median of three (short slices) or five evenly
// spaced elements of data. data must not be empty.
func samplePivot[T cmp.Ordered](data []T) T {
	n := len(data)
	if n <= 8 {
		s := [3]T{data[0], data[n/2], data[n-1]}
		InsertionSort(s[:])
		return s[1]
	}
	s := [5]T{data[0], data[n/4], data[n/2], data[3*n/4], data[n-1]}
	InsertionSort(s[:])
	return s[2]
}

// pivotRun partitions data around samplePivot(data) and returns the run
// data[lo:hi] of elements equal to the pivot. Everything before lo is
// smaller and everything from hi on is larger, so the run is already in its
// final place. Since the pivot is one of the elements, lo < hi.
func pivotRun[T cmp.Ordered](data []T) (lo, hi int) {
	pivot := samplePivot(data)
	lo, hi = 0, len(data)
	for i := 0; i < hi; {
		switch v := data[i]; {
		case v < pivot:
			data[lo], data[i] = v, data[lo]
			lo++
			i++
		case v > pivot:
			hi--
			data[i], data[hi] = data[hi], v
		default:
			i++
		}
	}
	return lo, hi
}
