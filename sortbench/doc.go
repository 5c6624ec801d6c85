// Package sortbench measures in-place sorting algorithms over synthetic
// input distributions and sizes.
//
// Bench is the composition root. For every requested length it asks each
// distribution in package dist for one input, then hands private clones of
// every input to every method in package sort. Each (method, input) pair is
// sorted Runs times as a single timed batch; the mean time per run and
// whether every copy came out non-descending form an Outcome.
//
// Outcomes are folded into a Table with two partitions, unstable and stable,
// chosen by each method's static Stable claim. Inside a partition results
// are keyed by length, then by method name, and hold one Entry per
// distribution in request order:
//
//	r := rand.New(rand.NewPCG(1, 2))
//	table, err := sortbench.Bench(r, sortbench.Config{
//	    Lengths: []int{100, 1000},
//	    Runs:    3,
//	}, dist.All[int32](), sort.All[int32]())
//	if err != nil {
//	    return err
//	}
//	for _, n := range table.Lengths(false) {
//	    for _, name := range table.Algorithms(false, n) {
//	        fmt.Println(n, name, table.Entries(false, n, name))
//	    }
//	}
//
// A method that leaves its copy unsorted, or panics, is recorded as a failed
// Outcome; the run always continues with the remaining pairs.
//
// Sorting and timing are strictly sequential. An optional worker pool only
// prepares clones before a timed batch and verifies them after it.
package sortbench
