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
	"slices"

	"golang.org/x/exp/constraints"
)

// Method is a sorting algorithm as seen by the benchmark harness.
//
// Sort orders data in place so every adjacent pair satisfies left <= right.
// Stable is a static claim about the algorithm; nothing checks it.
type Method[T cmp.Ordered] interface {
	Name() string
	Stable() bool
	Sort(data []T)
}

// Bubble runs BubbleSort.
//
// Bubble sort never swaps equal neighbours and so is stable in practice, but
// it keeps the unstable classification it has always been reported under.
type Bubble[T cmp.Ordered] struct{}

func (Bubble[T]) Name() string  { return "Basic bubblesort" }
func (Bubble[T]) Stable() bool  { return false }
func (Bubble[T]) Sort(data []T) { BubbleSort(data) }

// Insertion runs InsertionSort. Like Bubble it is reported as unstable.
type Insertion[T cmp.Ordered] struct{}

func (Insertion[T]) Name() string  { return "Basic insertion sort" }
func (Insertion[T]) Stable() bool  { return false }
func (Insertion[T]) Sort(data []T) { InsertionSort(data) }

// Quick runs QuickSort.
type Quick[T cmp.Ordered] struct{}

func (Quick[T]) Name() string  { return "Hybrid quicksort" }
func (Quick[T]) Stable() bool  { return false }
func (Quick[T]) Sort(data []T) { QuickSort(data) }

// Std is the baseline: slices.Sort, a pattern-defeating quicksort.
type Std[T cmp.Ordered] struct{}

func (Std[T]) Name() string  { return "Go standard library" }
func (Std[T]) Stable() bool  { return false }
func (Std[T]) Sort(data []T) { slices.Sort(data) }

// StdStable is the stable baseline: slices.SortStableFunc.
type StdStable[T cmp.Ordered] struct{}

func (StdStable[T]) Name() string  { return "Go standard library (stable)" }
func (StdStable[T]) Stable() bool  { return true }
func (StdStable[T]) Sort(data []T) { slices.SortStableFunc(data, cmp.Compare[T]) }

// Heap runs HeapSort.
type Heap[T cmp.Ordered] struct{}

func (Heap[T]) Name() string  { return "Heapsort" }
func (Heap[T]) Stable() bool  { return false }
func (Heap[T]) Sort(data []T) { HeapSort(data) }

// Intro runs IntroSort.
type Intro[T cmp.Ordered] struct{}

func (Intro[T]) Name() string  { return "Introsort" }
func (Intro[T]) Stable() bool  { return false }
func (Intro[T]) Sort(data []T) { IntroSort(data) }

// Radix runs RadixSort.
type Radix[T constraints.Integer] struct{}

func (Radix[T]) Name() string  { return "LSD radix sort" }
func (Radix[T]) Stable() bool  { return true }
func (Radix[T]) Sort(data []T) { RadixSort(data) }

// Func adapts a plain function to a Method, for algorithms that live
// outside this package.
type Func[T cmp.Ordered] struct {
	Label    string
	IsStable bool
	Fn       func(data []T)
}

func (f Func[T]) Name() string  { return f.Label }
func (f Func[T]) Stable() bool  { return f.IsStable }
func (f Func[T]) Sort(data []T) { f.Fn(data) }
