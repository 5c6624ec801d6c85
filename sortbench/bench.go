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

package sortbench

import (
	"cmp"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/samber/lo"
	"golang.org/x/exp/constraints"

	"github.com/ajroetker/go-sortbench/sortbench/contrib/dist"
	"github.com/ajroetker/go-sortbench/sortbench/contrib/sort"
	"github.com/ajroetker/go-sortbench/sortbench/contrib/workerpool"
)

// Bench measures every method against every (distribution, length) input
// and returns the folded results.
//
// The inputs are generated first, all of them, drawing from r in a fixed
// order: lengths outer, dists inner. r is not used afterwards. Every method
// then sorts cfg.Runs private clones of each input. Errors are returned only
// for invalid configuration; failing or panicking methods are recorded in
// the Table and the run continues.
func Bench[T constraints.Integer](r *rand.Rand, cfg Config, dists []dist.Distribution[T], methods []sort.Method[T]) (*Table, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(dists) == 0 {
		return nil, fmt.Errorf("%w: no distributions", ErrInvalidConfig)
	}
	if len(methods) == 0 {
		return nil, fmt.Errorf("%w: no sorting methods", ErrInvalidConfig)
	}
	if dup, ok := duplicateName(methods); ok {
		return nil, fmt.Errorf("%w: method %q listed twice", ErrInvalidConfig, dup)
	}

	logger := cfg.logger()
	start := time.Now()

	inputs := dist.Catalogue(r, dists, cfg.Lengths)
	logger.Debug("generated inputs", "inputs", len(inputs), "lengths", cfg.Lengths, "distributions", len(dists))

	table := newTable(cfg, lo.Map(methods, func(m sort.Method[T], _ int) Descriptor {
		return Descriptor{Name: m.Name(), Stable: m.Stable()}
	}))
	for _, m := range methods {
		desc := Descriptor{Name: m.Name(), Stable: m.Stable()}
		for _, in := range inputs {
			outcome, err := Measure(m, in.Data, cfg.Runs, cfg.Pool)
			if err != nil {
				logger.Error("method panicked", "algorithm", desc.Name, "distribution", in.Name, "length", len(in.Data), "err", err)
			} else if !outcome.Success {
				logger.Warn("output not sorted", "algorithm", desc.Name, "distribution", in.Name, "length", len(in.Data))
			}
			logger.Debug("measured",
				"algorithm", desc.Name,
				"distribution", in.Name,
				"length", len(in.Data),
				"time", outcome.Time,
				"success", outcome.Success)

			table.add(Record{
				Descriptor:   desc,
				Distribution: in.Name,
				Length:       len(in.Data),
				Outcome:      outcome,
			})
		}
	}

	logger.Info("benchmark complete",
		"records", len(table.Records),
		"failures", len(table.Failures()),
		"elapsed", time.Since(start).Round(time.Millisecond))
	return table, nil
}

// Measure sorts runs clones of data with m and reports the mean time per
// run and whether every clone came out sorted. data itself is not modified.
//
// The clones are made before the clock starts and checked after it stops;
// the clock covers the whole batch of runs sorts, executed back to back on
// the calling goroutine. pool may be nil. runs below 1 is treated as 1.
//
// A panic inside m ends the batch early, fails the outcome and is returned
// as the error.
func Measure[T cmp.Ordered](m sort.Method[T], data []T, runs int, pool *workerpool.Pool) (Outcome, error) {
	runs = max(runs, 1)
	copies := workerpool.Clone(pool, data, runs)

	elapsed, err := sortBatch(m, copies)
	if err != nil {
		return Outcome{Time: elapsed / time.Duration(runs)}, err
	}

	success := pool.All(len(copies), func(i int) bool {
		return sort.IsSorted(copies[i])
	})
	return Outcome{Time: elapsed / time.Duration(runs), Success: success}, nil
}

// sortBatch sorts every copy in order and times the batch as a whole.
func sortBatch[T cmp.Ordered](m sort.Method[T], copies [][]T) (elapsed time.Duration, err error) {
	start := time.Now()
	defer func() {
		elapsed = time.Since(start)
		if r := recover(); r != nil {
			err = fmt.Errorf("%s panicked: %v", m.Name(), r)
		}
	}()
	for _, c := range copies {
		m.Sort(c)
	}
	return 0, nil
}

func duplicateName[T cmp.Ordered](methods []sort.Method[T]) (string, bool) {
	seen := make(map[string]struct{}, len(methods))
	for _, m := range methods {
		if _, ok := seen[m.Name()]; ok {
			return m.Name(), true
		}
		seen[m.Name()] = struct{}{}
	}
	return "", false
}
