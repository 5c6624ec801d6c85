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

// BubbleSort sorts data in place with repeated adjacent-swap passes. Each
// pass bubbles the largest remaining element to the end of the unsorted
// prefix, which then shrinks by one.
func BubbleSort[T cmp.Ordered](data []T) {
	for end := len(data) - 1; end > 0; end-- {
		// i+1 <= end <= len(data)-1.
		for i := 0; i < end; i++ {
			if data[i] > data[i+1] {
				data[i], data[i+1] = data[i+1], data[i]
			}
		}
	}
}

// InsertionSort sorts data in place. Each element is shifted left past
// every strictly greater predecessor; the scan stops at the first
// predecessor that is no larger.
func InsertionSort[T cmp.Ordered](data []T) {
	for i := 1; i < len(data); i++ {
		key := data[i]
		// 0 <= j <= i < len(data), and data[j-1] is only read while j > 0.
		j := i
		for j > 0 && data[j-1] > key {
			data[j] = data[j-1]
			j--
		}
		data[j] = key
	}
}
