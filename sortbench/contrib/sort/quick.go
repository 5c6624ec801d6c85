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

import "cmp"

// QuickSort sorts data in place.
//
// Slices of InsertionThreshold elements or fewer go straight to
// InsertionSort. Larger ones are split with Partition; the shorter side is
// sorted recursively and the loop continues on the longer side, so the
// recursion depth never exceeds log2(len(data)).
func QuickSort[T cmp.Ordered](data []T) {
	quickSort(data, 0)
}

// quickDepthHook, when set, is called with the recursion depth on entry to
// every quickSort frame. Tests use it to bound the stack.
var quickDepthHook func(depth int)

func quickSort[T cmp.Ordered](data []T, depth int) {
	if quickDepthHook != nil {
		quickDepthHook(depth)
	}
	for len(data) > InsertionThreshold {
		// len(data) > 1, so p is the pivot's index in [0, len(data)-1] and
		// both data[:p] and data[p+1:] are in range.
		p := Partition(data)
		left, right := data[:p], data[p+1:]
		if len(left) < len(right) {
			quickSort(left, depth+1)
			data = right
		} else {
			quickSort(right, depth+1)
			data = left
		}
	}
	InsertionSort(data)
}

// Partition reorders data around its last element and returns the pivot's
// final index: every element before it is <= pivot and every element after
// it is > pivot.
//
// A single left-to-right scan swaps each element <= pivot to the front of
// the slice. Slices shorter than two elements are left alone and report 1.
func Partition[T cmp.Ordered](data []T) int {
	n := len(data)
	if n < 2 {
		return 1
	}

	last := n - 1
	pivot := data[last]
	slow := 0
	for fast := range last {
		// slow only advances together with fast, so slow <= fast < last.
		if data[fast] <= pivot {
			data[slow], data[fast] = data[fast], data[slow]
			slow++
		}
	}
	// slow <= last.
	data[slow], data[last] = data[last], data[slow]
	return slow
}
