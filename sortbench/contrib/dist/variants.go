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

package dist

import (
	"fmt"
	"math/rand/v2"

	"golang.org/x/exp/constraints"
)

// Sorted generates 0, 1, ..., n-1.
type Sorted[T constraints.Integer] struct{}

func (Sorted[T]) Name() string { return "Sorted" }

func (Sorted[T]) Generate(_ *rand.Rand, n int) []T {
	return ascending[T](n)
}

// Reverse generates n, n-1, ..., 1. The sequence starts at n, not n-1.
type Reverse[T constraints.Integer] struct{}

func (Reverse[T]) Name() string { return "Reversed" }

func (Reverse[T]) Generate(_ *rand.Rand, n int) []T {
	v := make([]T, n)
	for i := range v {
		v[i] = T(n - i)
	}
	return v
}

// AllEqual generates n zeros.
type AllEqual[T constraints.Integer] struct{}

func (AllEqual[T]) Name() string { return "All equal" }

func (AllEqual[T]) Generate(_ *rand.Rand, n int) []T {
	return make([]T, n)
}

// ShuffledValues generates Sorted reduced modulo N and then uniformly
// permuted, which limits the input to at most N distinct values.
//
// N == 0 disables the reduction. So does an N that T cannot represent,
// since no element of T can then reach N anyway.
type ShuffledValues[T constraints.Integer] struct {
	N int
}

// Shuffled returns the unreduced variant: a uniform permutation of Sorted.
func Shuffled[T constraints.Integer]() ShuffledValues[T] {
	return ShuffledValues[T]{}
}

func (s ShuffledValues[T]) Name() string {
	if s.N == 0 {
		return "Shuffled"
	}
	return fmt.Sprintf("Shuffled (%d values)", s.N)
}

func (s ShuffledValues[T]) Generate(r *rand.Rand, n int) []T {
	v := ascending[T](n)
	if m := T(s.N); s.N > 0 && int(m) == s.N {
		for i := range v {
			v[i] %= m
		}
	}
	shuffle(r, v)
	return v
}

// AscendingDescending generates n/2 values ascending from 0 followed by the
// remaining n - n/2 values descending from n.
//
// For n = 6 this is 0, 1, 2, 6, 5, 4.
type AscendingDescending[T constraints.Integer] struct{}

func (AscendingDescending[T]) Name() string { return "Asc+Dsc" }

func (AscendingDescending[T]) Generate(_ *rand.Rand, n int) []T {
	v := make([]T, n)
	half := n / 2
	for i := range half {
		v[i] = T(i)
	}
	for i := half; i < n; i++ {
		v[i] = T(n - (i - half))
	}
	return v
}

// PushFront generates Sorted with its first element moved to the end.
type PushFront[T constraints.Integer] struct{}

func (PushFront[T]) Name() string { return "Push front int" }

func (PushFront[T]) Generate(_ *rand.Rand, n int) []T {
	return moveToEnd(ascending[T](n), 0)
}

// PushMiddle generates Sorted with its element at index n/2 moved to the end.
type PushMiddle[T constraints.Integer] struct{}

func (PushMiddle[T]) Name() string { return "Push middle int" }

func (PushMiddle[T]) Generate(_ *rand.Rand, n int) []T {
	return moveToEnd(ascending[T](n), n/2)
}

// moveToEnd removes v[i] and appends it, shifting the tail left by one.
// An empty v is returned unchanged.
func moveToEnd[T constraints.Integer](v []T, i int) []T {
	if len(v) == 0 {
		return v
	}
	x := v[i]
	copy(v[i:], v[i+1:])
	v[len(v)-1] = x
	return v
}

// Uniform generates n independent values spanning the full range of T.
type Uniform[T constraints.Integer] struct{}

func (Uniform[T]) Name() string { return "Uniform" }

func (Uniform[T]) Generate(r *rand.Rand, n int) []T {
	v := make([]T, n)
	for i := range v {
		// Truncating a uniform 64-bit draw keeps every bit pattern of T
		// equally likely.
		v[i] = T(r.Uint64())
	}
	return v
}
