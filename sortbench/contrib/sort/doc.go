// Package sort provides the in-place sorting algorithms under benchmark and
// the Method abstraction the harness drives them through.
//
// # Algorithms
//
// All algorithms sort ascending by <= and are generic over cmp.Ordered
// (RadixSort over integers only):
//   - BubbleSort: adjacent-swap passes, O(n^2)
//   - InsertionSort: shift-left insertion with early exit, O(n) on nearly
//     sorted input
//   - QuickSort: Lomuto-partition quicksort with an insertion sort cutoff for
//     partitions of InsertionThreshold elements or fewer; it recurses into
//     the shorter side and loops on the longer one, so stack depth stays
//     O(log n) for any input
//   - IntroSort: sampled-pivot 3-way quicksort with heapsort fallback
//   - HeapSort: O(n log n) worst case
//   - RadixSort: LSD radix sort on 8-bit digits, stable
//
// # Methods
//
// A Method pairs an algorithm with its display name and a static stability
// claim. The claim is never verified; the harness only checks sortedness.
//
//	for _, m := range sort.All[int32]() {
//	    data := []int32{3, 1, 2}
//	    m.Sort(data)
//	    fmt.Println(m.Name(), m.Stable(), data)
//	}
package sort
