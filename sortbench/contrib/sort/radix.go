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
	"unsafe"

	"golang.org/x/exp/constraints"
)

// RadixSort sorts integers in place using LSD radix sort on 8-bit digits.
// Equal elements keep their relative order.
//
// It makes one counting pass per byte of T through a scratch buffer of
// len(data) elements. For signed types the most significant digit is
// bucketed negatives first.
func RadixSort[T constraints.Integer](data []T) {
	n := len(data)
	if n <= 1 {
		return
	}

	var zero T
	width := int(unsafe.Sizeof(zero))
	signed := ^zero < 0

	src, dst := data, make([]T, n)
	for b := range width {
		radixPass(src, dst, 8*b, signed && b == width-1)
		src, dst = dst, src
	}

	// After an odd number of passes the result sits in the scratch buffer.
	if width%2 == 1 {
		copy(data, src)
	}
}

// radixPass scatters src into dst ordered by the 8-bit digit at shift.
// When signedDigit is set the digit carries the sign bit, so buckets
// 128-255 (negative) come before 0-127 (positive).
func radixPass[T constraints.Integer](src, dst []T, shift int, signedDigit bool) {
	var count [radixBuckets]int
	for _, v := range src {
		count[uint8(v>>shift)]++
	}

	// Compute prefix sum to get bucket offsets
	offset := 0
	if signedDigit {
		for b := 128; b < radixBuckets; b++ {
			c := count[b]
			count[b] = offset
			offset += c
		}
		for b := range 128 {
			c := count[b]
			count[b] = offset
			offset += c
		}
	} else {
		for b := range radixBuckets {
			c := count[b]
			count[b] = offset
			offset += c
		}
	}

	// Scatter
	for _, v := range src {
		d := uint8(v >> shift)
		dst[count[d]] = v
		count[d]++
	}
}
