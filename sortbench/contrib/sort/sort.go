// Copyright 2025 go-sortbench Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sort

import (
	"cmp"
	"math/bits"
)

// IntroSort sorts data in place using an introsort variant:
//   - Insertion sort for small slices
//   - 3-way quicksort partitioning around a sampled pivot
//   - Heapsort fallback once recursion gets too deep
func IntroSort[T cmp.Ordered](data []T) {
	n := len(data)
	if n <= 1 {
		return
	}

	// Max recursion depth: 2 * (floor(log2(n)) + 1)
	introSortImpl(data, 2*bits.Len(uint(n)))
}

// introSortImpl is the recursive implementation of IntroSort.
func introSortImpl[T cmp.Ordered](data []T, depthLimit int) {
	for {
		n := len(data)
		if n <= introInsertionThreshold {
			InsertionSort(data)
			return
		}

		// Fallback to heapsort if recursion too deep
		if depthLimit == 0 {
			HeapSort(data)
			return
		}
		depthLimit--

		lo, hi := pivotRun(data)
		if lo < n-hi {
			introSortImpl(data[:lo], depthLimit)
			data = data[hi:]
		} else {
			introSortImpl(data[hi:], depthLimit)
			data = data[:lo]
		}
	}
}

// HeapSort sorts data in place with an O(n log n) worst case.
// The max-heap is built bottom-up, then its root is swapped behind a
// shrinking heap one element at a time.
func HeapSort[T cmp.Ordered](data []T) {
	for root := len(data)/2 - 1; root >= 0; root-- {
		heapify(data, root)
	}
	for end := len(data) - 1; end > 0; end-- {
		data[0], data[end] = data[end], data[0]
		heapify(data[:end], 0)
	}
}

// heapify sinks heap[root] until neither child is larger. Both subtrees of
// root must already be max-heaps.
func heapify[T cmp.Ordered](heap []T, root int) {
	for {
		child := 2*root + 1
		if child >= len(heap) {
			return
		}
		if child+1 < len(heap) && heap[child] < heap[child+1] {
			child++
		}
		if heap[root] >= heap[child] {
			return
		}
		heap[root], heap[child] = heap[child], heap[root]
		root = child
	}
}

// IsSorted reports whether every adjacent pair of data satisfies
// left <= right. Empty and single-element slices are sorted.
func IsSorted[T cmp.Ordered](data []T) bool {
	for i := 1; i < len(data); i++ {
		if data[i-1] > data[i] {
			return false
		}
	}
	return true
}
