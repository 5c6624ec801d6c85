// Copyright 2025 The go-sortbench Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"runtime"
	"sync/atomic"
	"testing"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestParallelFor(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	results := make([]int, n)

	pool.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})

	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestParallelForAtomic(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	var sum atomic.Int64

	pool.ParallelForAtomic(n, func(i int) {
		sum.Add(int64(i))
	})

	if got, want := sum.Load(), int64(n*(n-1)/2); got != want {
		t.Errorf("sum = %d, want %d", got, want)
	}
}

func TestNilPoolRunsSequentially(t *testing.T) {
	var pool *Pool
	defer pool.Close()

	calls := 0
	pool.ParallelFor(10, func(start, end int) {
		calls++
		if start != 0 || end != 10 {
			t.Errorf("ParallelFor range = [%d, %d), want [0, 10)", start, end)
		}
	})
	if calls != 1 {
		t.Errorf("ParallelFor called fn %d times, want 1", calls)
	}
	if pool.NumWorkers() != 1 {
		t.Errorf("NumWorkers() = %d, want 1", pool.NumWorkers())
	}
}

func TestClosedPoolFallsBack(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close()

	n := 50
	results := make([]int, n)
	pool.ParallelForAtomic(n, func(i int) { results[i] = i })
	for i := range n {
		if results[i] != i {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i)
		}
	}
}

func TestAll(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if !pool.All(100, func(i int) bool { return i >= 0 }) {
		t.Error("All(true predicate) = false")
	}

	var seen atomic.Int64
	if pool.All(100, func(i int) bool {
		seen.Add(1)
		return i != 37
	}) {
		t.Error("All(predicate failing at 37) = true")
	}
	if seen.Load() != 100 {
		t.Errorf("All evaluated %d indices, want 100", seen.Load())
	}

	if !pool.All(0, func(int) bool { return false }) {
		t.Error("All over zero items should be vacuously true")
	}
}

func TestClone(t *testing.T) {
	pool := New(3)
	defer pool.Close()

	src := []int32{3, 1, 2}
	copies := Clone(pool, src, 5)
	if len(copies) != 5 {
		t.Fatalf("Clone returned %d copies, want 5", len(copies))
	}
	for i, c := range copies {
		if len(c) != len(src) || c[0] != 3 || c[1] != 1 || c[2] != 2 {
			t.Errorf("copies[%d] = %v, want %v", i, c, src)
		}
	}

	copies[0][0] = 99
	if src[0] != 3 || copies[1][0] != 3 {
		t.Error("clones alias each other or the source")
	}

	if got := Clone(pool, src, 0); got != nil {
		t.Errorf("Clone(0 copies) = %v, want nil", got)
	}
}

func BenchmarkClone(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	src := make([]int64, 10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Clone(pool, src, 8)
	}
}
