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
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/constraints"
)

// ErrUnknown is returned by Parse for names that match no method.
var ErrUnknown = errors.New("sort: unknown method")

// defaultKeys lists the registry keys returned by All, in run order.
var defaultKeys = []string{
	"bubble",
	"insertion",
	"quick",
	"std",
	"std-stable",
	"heap",
	"intro",
	"radix",
}

// Keys returns the registry keys of every method, in the order All returns
// them.
func Keys() []string {
	return slices.Clone(defaultKeys)
}

// All returns every method in a fixed order.
func All[T constraints.Integer]() []Method[T] {
	out := make([]Method[T], 0, len(defaultKeys))
	for _, key := range defaultKeys {
		m, err := Parse[T](key)
		if err != nil {
			panic(err) // defaultKeys and Parse disagree
		}
		out = append(out, m)
	}
	return out
}

// Parse resolves a registry key or display name, case-insensitively.
func Parse[T constraints.Integer](name string) (Method[T], error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bubble", "basic bubblesort":
		return Bubble[T]{}, nil
	case "insertion", "basic insertion sort":
		return Insertion[T]{}, nil
	case "quick", "hybrid quicksort":
		return Quick[T]{}, nil
	case "std", "go standard library":
		return Std[T]{}, nil
	case "std-stable", "go standard library (stable)":
		return StdStable[T]{}, nil
	case "heap", "heapsort":
		return Heap[T]{}, nil
	case "intro", "introsort":
		return Intro[T]{}, nil
	case "radix", "lsd radix sort":
		return Radix[T]{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknown, name)
}
