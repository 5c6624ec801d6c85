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
	"math/rand/v2"

	"golang.org/x/exp/constraints"
)

// Distribution synthesizes one named input pattern.
//
// Generate must return exactly n elements. Implementations that need
// randomness draw it from r and nowhere else; r is shared by every
// distribution of a run and must only be used sequentially.
type Distribution[T constraints.Integer] interface {
	Name() string
	Generate(r *rand.Rand, n int) []T
}

// Output is one generated input, labeled with the distribution that built it.
// Its Data is never mutated once generated; consumers sort clones.
type Output[T constraints.Integer] struct {
	Name string
	Data []T
}

// Catalogue generates one Output per (length, distribution) pair.
//
// Lengths form the outer loop and distributions the inner one, so for every
// length the outputs appear in the order dists was given. Generate is called
// exactly once per pair, in that same order, which keeps the consumption of
// r reproducible for a fixed seed.
func Catalogue[T constraints.Integer](r *rand.Rand, dists []Distribution[T], lengths []int) []Output[T] {
	out := make([]Output[T], 0, len(dists)*len(lengths))
	for _, n := range lengths {
		for _, d := range dists {
			out = append(out, Output[T]{Name: d.Name(), Data: d.Generate(r, n)})
		}
	}
	return out
}

// ascending returns 0, 1, ..., n-1 converted to T.
func ascending[T constraints.Integer](n int) []T {
	v := make([]T, n)
	for i := range v {
		v[i] = T(i)
	}
	return v
}

func shuffle[T constraints.Integer](r *rand.Rand, v []T) {
	r.Shuffle(len(v), func(i, j int) {
		v[i], v[j] = v[j], v[i]
	})
}
