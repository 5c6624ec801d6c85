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
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// ErrUnknown is returned by Parse for names that match no distribution.
var ErrUnknown = errors.New("dist: unknown distribution")

// defaultKeys lists the registry keys returned by All, in run order.
var defaultKeys = []string{
	"uniform",
	"sorted",
	"reversed",
	"all-equal",
	"shuffled",
	"shuffled-16",
	"asc-dsc",
	"push-front",
	"push-middle",
}

// Keys returns the registry keys of the default distributions, in the order
// All returns them.
func Keys() []string {
	return slices.Clone(defaultKeys)
}

// All returns every default distribution in a fixed order.
func All[T constraints.Integer]() []Distribution[T] {
	out := make([]Distribution[T], 0, len(defaultKeys))
	for _, key := range defaultKeys {
		d, err := Parse[T](key)
		if err != nil {
			panic(err) // defaultKeys and Parse disagree
		}
		out = append(out, d)
	}
	return out
}

// Parse resolves a registry key or display name, case-insensitively.
//
// Shuffled variants with a limited value domain are spelled "shuffled-N" or
// "shuffled:N"; "shuffled-0" is plain Shuffled.
func Parse[T constraints.Integer](name string) (Distribution[T], error) {
	key := strings.ToLower(strings.TrimSpace(name))
	switch key {
	case "uniform":
		return Uniform[T]{}, nil
	case "sorted":
		return Sorted[T]{}, nil
	case "reversed", "reverse":
		return Reverse[T]{}, nil
	case "all-equal", "all equal", "allequal":
		return AllEqual[T]{}, nil
	case "shuffled":
		return Shuffled[T](), nil
	case "asc-dsc", "asc+dsc", "ascending-descending":
		return AscendingDescending[T]{}, nil
	case "push-front", "push front int":
		return PushFront[T]{}, nil
	case "push-middle", "push middle int":
		return PushMiddle[T]{}, nil
	}

	if n, ok := parseShuffledValues(key); ok {
		return ShuffledValues[T]{N: n}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknown, name)
}

// parseShuffledValues accepts "shuffled-N", "shuffled:N" and the display
// form "shuffled (N values)".
func parseShuffledValues(key string) (int, bool) {
	rest, ok := strings.CutPrefix(key, "shuffled")
	if !ok || rest == "" {
		return 0, false
	}
	switch rest[0] {
	case '-', ':':
		rest = rest[1:]
	case ' ':
		rest = strings.TrimSuffix(strings.TrimPrefix(rest, " ("), " values)")
	default:
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
