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
	"errors"
	"math"
	"math/bits"
	"math/rand"
	"slices"
	"strconv"
	"testing"
)

// Helper to check if slice is sorted
func isSorted[T cmp.Ordered](data []T) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}

func randomInt32(rng *rand.Rand, n int, span int32) []int32 {
	data := make([]int32, n)
	for i := range data {
		data[i] = rng.Int31n(span) - span/2
	}
	return data
}

// edgeInputs covers the shapes most likely to break index arithmetic.
func edgeInputs() map[string][]int32 {
	rng := rand.New(rand.NewSource(1))
	inputs := map[string][]int32{
		"empty":        {},
		"single":       {42},
		"two sorted":   {1, 2},
		"two reversed": {2, 1},
		"two equal":    {7, 7},
		"three":        {3, 1, 2},
		"duplicates":   {5, 5, 5, 5, 5, 5, 5, 5},
		"mixed dups":   {3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5},
		"negatives":    {-3, 7, -100, 0, 2, -3},
		"extremes":     {math.MaxInt32, math.MinInt32, 0, -1, 1, math.MaxInt32, math.MinInt32},
	}
	for _, n := range []int{19, 20, 21, 22, 40, 63, 64, 65, 100, 257, 1000} {
		inputs["random-"+strconv.Itoa(n)] = randomInt32(rng, n, 10000)
		inputs["few-values-"+strconv.Itoa(n)] = randomInt32(rng, n, 4)

		sorted := make([]int32, n)
		reversed := make([]int32, n)
		equal := make([]int32, n)
		for i := range n {
			sorted[i] = int32(i)
			reversed[i] = int32(n - i)
		}
		inputs["sorted-"+strconv.Itoa(n)] = sorted
		inputs["reversed-"+strconv.Itoa(n)] = reversed
		inputs["equal-"+strconv.Itoa(n)] = equal
	}
	return inputs
}

// TestMethods runs every registered method over the edge inputs and
// compares against slices.Sort.
func TestMethods(t *testing.T) {
	inputs := edgeInputs()
	for _, m := range All[int32]() {
		t.Run(m.Name(), func(t *testing.T) {
			for name, input := range inputs {
				data := slices.Clone(input)
				m.Sort(data)
				if len(data) != len(input) {
					t.Fatalf("%s: length changed from %d to %d", name, len(input), len(data))
				}
				if !isSorted(data) {
					t.Errorf("%s: produced unsorted result: %v", name, data)
					continue
				}

				want := slices.Clone(input)
				slices.Sort(want)
				if !slices.Equal(data, want) {
					t.Errorf("%s: result is not a permutation of the input", name)
				}
			}
		})
	}
}

// TestMethodsIdempotent checks that sorting a sorted slice is a no-op.
func TestMethodsIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, m := range All[int32]() {
		data := randomInt32(rng, 500, 50)
		m.Sort(data)
		once := slices.Clone(data)
		m.Sort(data)
		if !slices.Equal(once, data) {
			t.Errorf("%s: sorting twice differs from sorting once", m.Name())
		}
	}
}

// TestMethodsOtherTypes exercises narrow and unsigned element types.
func TestMethodsOtherTypes(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, n := range []int{0, 1, 2, 21, 300} {
		i8 := make([]int8, n)
		u8 := make([]uint8, n)
		u16 := make([]uint16, n)
		i64 := make([]int64, n)
		for i := range n {
			i8[i] = int8(rng.Intn(256) - 128)
			u8[i] = uint8(rng.Intn(256))
			u16[i] = uint16(rng.Intn(65536))
			i64[i] = rng.Int63() - math.MaxInt64/2
		}
		if n > 1 {
			i64[0] = math.MinInt64
			i64[n-1] = math.MaxInt64
		}

		for _, m := range All[int8]() {
			data := slices.Clone(i8)
			m.Sort(data)
			if !isSorted(data) {
				t.Errorf("%s: int8 n=%d unsorted: %v", m.Name(), n, data)
			}
		}
		for _, m := range All[uint8]() {
			data := slices.Clone(u8)
			m.Sort(data)
			if !isSorted(data) {
				t.Errorf("%s: uint8 n=%d unsorted: %v", m.Name(), n, data)
			}
		}
		for _, m := range All[uint16]() {
			data := slices.Clone(u16)
			m.Sort(data)
			if !isSorted(data) {
				t.Errorf("%s: uint16 n=%d unsorted", m.Name(), n)
			}
		}
		for _, m := range All[int64]() {
			data := slices.Clone(i64)
			m.Sort(data)
			if !isSorted(data) {
				t.Errorf("%s: int64 n=%d unsorted", m.Name(), n)
			}
		}
	}
}

// TestPartitionTwoElements tests the smallest partition that moves data.
func TestPartitionTwoElements(t *testing.T) {
	data := []int32{9, 4}
	p := Partition(data)
	if p < 0 || p > 2 {
		t.Fatalf("Partition([9 4]) = %d, want an index in [0, 2]", p)
	}
	if data[0] != 4 || data[1] != 9 {
		t.Errorf("Partition([9 4]) left %v, want [4 9]", data)
	}
}

// TestPartitionShort tests the no-op boundary case.
func TestPartitionShort(t *testing.T) {
	if p := Partition([]int32{}); p != 1 {
		t.Errorf("Partition(empty) = %d, want 1", p)
	}
	data := []int32{5}
	if p := Partition(data); p != 1 {
		t.Errorf("Partition([5]) = %d, want 1", p)
	}
	if data[0] != 5 {
		t.Errorf("Partition([5]) modified data: %v", data)
	}
}

// TestPartition verifies the pivot split on random and duplicate-heavy data.
func TestPartition(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for _, span := range []int32{2, 5, 1000} {
		for _, n := range []int{2, 3, 10, 21, 200} {
			data := randomInt32(rng, n, span)
			pivot := data[n-1]
			p := Partition(data)

			if p < 0 || p >= n {
				t.Fatalf("n=%d: Partition returned %d", n, p)
			}
			if data[p] != pivot {
				t.Errorf("n=%d: data[%d]=%d, want pivot %d", n, p, data[p], pivot)
			}
			for i := range p {
				if data[i] > pivot {
					t.Errorf("n=%d: data[%d]=%d should be <= pivot %d", n, i, data[i], pivot)
				}
			}
			for i := p + 1; i < n; i++ {
				if data[i] <= pivot {
					t.Errorf("n=%d: data[%d]=%d should be > pivot %d", n, i, data[i], pivot)
				}
			}
		}
	}
}

// TestQuickSortAdversarial runs the inputs that drive a last-element pivot
// to its worst case.
func TestQuickSortAdversarial(t *testing.T) {
	const n = 5000
	inputs := map[string][]int32{
		"sorted":   make([]int32, n),
		"reversed": make([]int32, n),
		"equal":    make([]int32, n),
		"organ":    make([]int32, n),
	}
	for i := range n {
		inputs["sorted"][i] = int32(i)
		inputs["reversed"][i] = int32(n - i)
		inputs["organ"][i] = int32(min(i, n-i))
	}
	for name, data := range inputs {
		QuickSort(data)
		if !isSorted(data) {
			t.Errorf("QuickSort(%s) produced unsorted result", name)
		}
	}
}

// TestQuickSortStackDepth checks that QuickSort only recurses into the
// shorter side of each split, which bounds the depth by log2(n) even on
// inputs that make every split maximally uneven.
func TestQuickSortStackDepth(t *testing.T) {
	t.Cleanup(func() { quickDepthHook = nil })

	const n = 1 << 12
	rng := rand.New(rand.NewSource(2))
	inputs := map[string][]int32{
		"sorted":   make([]int32, n),
		"reversed": make([]int32, n),
		"organ":    make([]int32, n),
		"equal":    make([]int32, n),
		"random":   randomInt32(rng, n, 1<<20),
	}
	for i := range n {
		inputs["sorted"][i] = int32(i)
		inputs["reversed"][i] = int32(n - i)
		inputs["organ"][i] = int32(min(i, n-i))
	}

	limit := bits.Len(uint(n))
	for name, data := range inputs {
		maxDepth := 0
		quickDepthHook = func(depth int) { maxDepth = max(maxDepth, depth) }
		QuickSort(data)
		if !isSorted(data) {
			t.Errorf("QuickSort(%s) produced unsorted result", name)
		}
		if maxDepth > limit {
			t.Errorf("QuickSort(%s): recursion depth %d, want <= %d", name, maxDepth, limit)
		}
	}
}

func TestSamplePivot(t *testing.T) {
	for n := 1; n <= 100; n++ {
		data := make([]int32, n)
		for i := range data {
			data[i] = int32(i)
		}
		if got := samplePivot(data); got != int32(n/2) {
			t.Errorf("samplePivot(0..%d) = %d, want %d", n-1, got, n/2)
		}
	}
}

// TestPivotRun verifies the three-way split IntroSort relies on.
func TestPivotRun(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, n := range []int{1, 2, 3, 8, 9, 65, 500} {
		for _, span := range []int32{2, 10, 10000} {
			data := randomInt32(rng, n, span)
			want := slices.Clone(data)
			slices.Sort(want)

			lo, hi := pivotRun(data)
			if lo >= hi {
				t.Fatalf("n=%d span=%d: empty pivot run [%d:%d]", n, span, lo, hi)
			}
			pivot := data[lo]
			for i, v := range data {
				switch {
				case i < lo && v >= pivot,
					i >= lo && i < hi && v != pivot,
					i >= hi && v <= pivot:
					t.Errorf("n=%d span=%d: data[%d]=%d misplaced around run [%d:%d] of %d", n, span, i, v, lo, hi, pivot)
				}
			}
			got := slices.Clone(data)
			slices.Sort(got)
			if !slices.Equal(got, want) {
				t.Errorf("n=%d span=%d: pivotRun changed the elements", n, span)
			}
		}
	}
}

// TestRadixSortSignedOrder tests the sign-aware final pass.
func TestRadixSortSignedOrder(t *testing.T) {
	data := []int64{0, -1, math.MaxInt64, math.MinInt64, 1, -256, 256, -255}
	RadixSort(data)
	want := []int64{math.MinInt64, -256, -255, -1, 0, 1, 256, math.MaxInt64}
	if !slices.Equal(data, want) {
		t.Errorf("RadixSort = %v, want %v", data, want)
	}

	small := []int8{127, -128, 0, -1, 1}
	RadixSort(small)
	if !slices.Equal(small, []int8{-128, -1, 0, 1, 127}) {
		t.Errorf("RadixSort(int8) = %v", small)
	}
}

// TestIsSorted tests the IsSorted function
func TestIsSorted(t *testing.T) {
	tests := []struct {
		name string
		data []int32
		want bool
	}{
		{"empty", []int32{}, true},
		{"single", []int32{1}, true},
		{"sorted", []int32{1, 2, 3, 4, 5}, true},
		{"duplicates", []int32{1, 1, 2, 2, 2}, true},
		{"unsorted", []int32{1, 3, 2, 4, 5}, false},
		{"reversed", []int32{5, 4, 3, 2, 1}, false},
		{"last pair", []int32{1, 2, 3, 5, 4}, false},
	}
	for _, tt := range tests {
		if got := IsSorted(tt.data); got != tt.want {
			t.Errorf("IsSorted(%s) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

// TestStabilityClaims pins the static claims each method is reported under.
func TestStabilityClaims(t *testing.T) {
	want := map[string]bool{
		"Basic bubblesort":             false,
		"Basic insertion sort":         false,
		"Hybrid quicksort":             false,
		"Go standard library":          false,
		"Go standard library (stable)": true,
		"Heapsort":                     false,
		"Introsort":                    false,
		"LSD radix sort":               true,
	}
	methods := All[int32]()
	if len(methods) != len(want) {
		t.Fatalf("All returned %d methods, want %d", len(methods), len(want))
	}
	for _, m := range methods {
		stable, ok := want[m.Name()]
		if !ok {
			t.Errorf("unexpected method %q", m.Name())
			continue
		}
		if m.Stable() != stable {
			t.Errorf("%s.Stable() = %v, want %v", m.Name(), m.Stable(), stable)
		}
	}
}

func TestParse(t *testing.T) {
	for _, key := range Keys() {
		m, err := Parse[int32](key)
		if err != nil {
			t.Fatalf("Parse(%q): %v", key, err)
		}
		byName, err := Parse[int32](m.Name())
		if err != nil {
			t.Fatalf("Parse(%q): %v", m.Name(), err)
		}
		if byName.Name() != m.Name() {
			t.Errorf("Parse(%q).Name() = %q, want %q", m.Name(), byName.Name(), m.Name())
		}
	}
	if _, err := Parse[int32]("bogosort"); !errors.Is(err, ErrUnknown) {
		t.Errorf("Parse(bogosort) error = %v, want ErrUnknown", err)
	}
}

func TestFunc(t *testing.T) {
	called := false
	m := Func[int32]{Label: "custom", IsStable: true, Fn: func(data []int32) {
		called = true
		slices.Sort(data)
	}}
	data := []int32{2, 1}
	m.Sort(data)
	if !called || !isSorted(data) || m.Name() != "custom" || !m.Stable() {
		t.Errorf("Func adapter: called=%v data=%v name=%q stable=%v", called, data, m.Name(), m.Stable())
	}
}
