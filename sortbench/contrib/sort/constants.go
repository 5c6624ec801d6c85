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

// Thresholds for the hybrid algorithms.
const (
	// InsertionThreshold: QuickSort hands partitions this size or smaller to
	// insertion sort.
	InsertionThreshold = 20

	// introInsertionThreshold: IntroSort uses insertion sort at or below this size.
	introInsertionThreshold = 64

	// radixBuckets is the bucket count of one 8-bit radix digit.
	radixBuckets = 256
)
