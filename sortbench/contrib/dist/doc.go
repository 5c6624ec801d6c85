// Package dist provides the synthetic input distributions fed to the sorting
// benchmarks.
//
// Every distribution produces a slice of exactly n integers. Most patterns
// are fully deterministic given n; only the shuffled variants and Uniform
// draw from the random source, so a fixed seed reproduces a whole run.
//
// # Distributions
//
//   - Sorted: 0, 1, ..., n-1
//   - Reverse: n, n-1, ..., 1
//   - AllEqual: n zeros
//   - ShuffledValues: Sorted reduced modulo N, then uniformly permuted
//     (N == 0 is plain Shuffled)
//   - AscendingDescending: first half ascending from 0, second half
//     descending from n
//   - PushFront / PushMiddle: Sorted with the first or middle element moved
//     to the end
//   - Uniform: independent draws over the full range of the element type
//
// # Example Usage
//
//	r := rand.New(rand.NewPCG(1, 2))
//	inputs := dist.Catalogue(r, dist.All[int32](), []int{100, 1000})
//	for _, in := range inputs {
//	    fmt.Println(in.Name, len(in.Data))
//	}
package dist
