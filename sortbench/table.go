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
	"time"

	"github.com/samber/lo"
)

// Outcome is the measurement of one method on one input.
type Outcome struct {
	// Time is the mean wall-clock time per run: the whole batch of Runs
	// sorts divided by Runs.
	Time time.Duration `json:"time_ns"`

	// Success is true iff every run left its copy non-descending.
	Success bool `json:"success"`
}

// Descriptor identifies a method: its display name and static stability claim.
type Descriptor struct {
	Name   string `json:"name"`
	Stable bool   `json:"stable"`
}

// Record is one measured (method, distribution, length) triple.
type Record struct {
	Descriptor
	Distribution string `json:"distribution"`
	Length       int    `json:"length"`
	Outcome
}

// Entry is one distribution's outcome inside a Table partition.
type Entry struct {
	Distribution string `json:"distribution"`
	Outcome
}

// Partition maps input length to method name to the method's entries, one
// per distribution in request order.
type Partition map[int]map[string][]Entry

// Table holds the results of one Bench call. It is read-only once returned.
//
// Every method lands in exactly one partition, selected by its Stable claim.
type Table struct {
	Unstable Partition `json:"unstable"`
	Stable   Partition `json:"stable"`

	// Runs and Requested echo the run configuration.
	Runs      int   `json:"runs"`
	Requested []int `json:"lengths"`

	// Methods lists the measured methods in request order.
	Methods []Descriptor `json:"methods"`

	// Records lists every measurement in the order it was taken: methods in
	// request order, and for each method the inputs length by length.
	Records []Record `json:"records"`

	Host Host `json:"host"`
}

func newTable(cfg Config, methods []Descriptor) *Table {
	return &Table{
		Unstable:  Partition{},
		Stable:    Partition{},
		Runs:      cfg.Runs,
		Requested: append([]int(nil), cfg.Lengths...),
		Methods:   methods,
		Host:      DetectHost(),
	}
}

// add folds rec into the partition chosen by its stability claim.
func (t *Table) add(rec Record) {
	p := t.Partition(rec.Stable)
	byName, ok := p[rec.Length]
	if !ok {
		byName = map[string][]Entry{}
		p[rec.Length] = byName
	}
	byName[rec.Name] = append(byName[rec.Name], Entry{Distribution: rec.Distribution, Outcome: rec.Outcome})
	t.Records = append(t.Records, rec)
}

// Partition returns the stable or unstable partition.
func (t *Table) Partition(stable bool) Partition {
	if stable {
		return t.Stable
	}
	return t.Unstable
}

// Lengths returns, in request order, the lengths that have results in the
// selected partition.
func (t *Table) Lengths(stable bool) []int {
	p := t.Partition(stable)
	return lo.Filter(t.Requested, func(n int, _ int) bool {
		_, ok := p[n]
		return ok
	})
}

// Algorithms returns, in request order, the names of the methods with results
// for length n in the selected partition.
func (t *Table) Algorithms(stable bool, n int) []string {
	byName := t.Partition(stable)[n]
	return lo.FilterMap(t.Methods, func(d Descriptor, _ int) (string, bool) {
		_, ok := byName[d.Name]
		return d.Name, ok
	})
}

// Entries returns the per-distribution results of one method at length n, or
// nil if there are none.
func (t *Table) Entries(stable bool, n int, name string) []Entry {
	return t.Partition(stable)[n][name]
}

// Failures returns the records whose output was not sorted.
func (t *Table) Failures() []Record {
	return lo.Filter(t.Records, func(r Record, _ int) bool {
		return !r.Success
	})
}
