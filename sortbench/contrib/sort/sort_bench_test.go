package sort

import (
	"math/rand"
	"slices"
	"testing"
)

// Generate random data for benchmarks
func generateInt32(n int) []int32 {
	data := make([]int32, n)
	for i := range data {
		data[i] = rand.Int31n(10000) - 5000
	}
	return data
}

func generateInt64(n int) []int64 {
	data := make([]int64, n)
	for i := range data {
		data[i] = rand.Int63n(10000) - 5000
	}
	return data
}

// QuickSort benchmarks
func BenchmarkQuickSort_Int32_100(b *testing.B) {
	benchmarkInt32(b, 100, QuickSort[int32])
}

func BenchmarkQuickSort_Int32_1000(b *testing.B) {
	benchmarkInt32(b, 1000, QuickSort[int32])
}

func BenchmarkQuickSort_Int32_10000(b *testing.B) {
	benchmarkInt32(b, 10000, QuickSort[int32])
}

// InsertionSort benchmarks
func BenchmarkInsertionSort_Int32_100(b *testing.B) {
	benchmarkInt32(b, 100, InsertionSort[int32])
}

func BenchmarkInsertionSort_Int32_1000(b *testing.B) {
	benchmarkInt32(b, 1000, InsertionSort[int32])
}

// BubbleSort benchmarks
func BenchmarkBubbleSort_Int32_100(b *testing.B) {
	benchmarkInt32(b, 100, BubbleSort[int32])
}

func BenchmarkBubbleSort_Int32_1000(b *testing.B) {
	benchmarkInt32(b, 1000, BubbleSort[int32])
}

// IntroSort benchmarks
func BenchmarkIntroSort_Int32_1000(b *testing.B) {
	benchmarkInt32(b, 1000, IntroSort[int32])
}

func BenchmarkIntroSort_Int32_10000(b *testing.B) {
	benchmarkInt32(b, 10000, IntroSort[int32])
}

// RadixSort benchmarks
func BenchmarkRadixSort_Int32_10000(b *testing.B) {
	benchmarkInt32(b, 10000, RadixSort[int32])
}

func BenchmarkRadixSort_Int64_10000(b *testing.B) {
	ref := generateInt64(10000)
	data := make([]int64, len(ref))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		RadixSort(data)
	}
}

// Standard library comparison
func BenchmarkStdSort_Int32_10000(b *testing.B) {
	benchmarkInt32(b, 10000, slices.Sort[[]int32, int32])
}

func BenchmarkStdSort_Int64_10000(b *testing.B) {
	ref := generateInt64(10000)
	data := make([]int64, len(ref))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		slices.Sort(data)
	}
}

func benchmarkInt32(b *testing.B, n int, sortFn func([]int32)) {
	// Generate reference data
	ref := generateInt32(n)
	data := make([]int32, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		sortFn(data)
	}
}
