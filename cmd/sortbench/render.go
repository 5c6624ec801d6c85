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

package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/samber/lo"
	"github.com/sugawarayuuta/sonnet"

	"github.com/ajroetker/go-sortbench/sortbench"
)

// failMark is appended to cells whose output was not sorted.
const failMark = " ✗"

// renderTable writes one table per partition and length: a row per
// algorithm, a column per distribution, each cell the mean time per run.
// Within a column the fastest successful cell is highlighted.
func renderTable(w io.Writer, t *sortbench.Table) error {
	h := t.Host
	if _, err := fmt.Fprintln(w, SubtitleStyle.Render(fmt.Sprintf(
		"%s/%s %s, %d CPUs, SIMD %s, %d runs per input",
		h.GOOS, h.GOARCH, h.GoVersion, h.NumCPU, h.SIMD, t.Runs))); err != nil {
		return err
	}

	for _, stable := range []bool{false, true} {
		for _, n := range t.Lengths(stable) {
			if _, err := fmt.Fprintf(w, "\n%s\n%s\n",
				TitleStyle.Render(partitionTitle(stable)+" sorts"),
				SubtitleStyle.Render("n = "+strconv.Itoa(n))); err != nil {
				return err
			}
			if _, err := fmt.Fprintln(w, lengthTable(t, stable, n).Render()); err != nil {
				return err
			}
		}
	}

	if failures := t.Failures(); len(failures) > 0 {
		msg := fmt.Sprintf("\n%d measurement(s) produced unsorted output (marked%s)", len(failures), failMark)
		if _, err := fmt.Fprintln(w, ErrorStyle.Render(msg)); err != nil {
			return err
		}
	}
	return nil
}

func partitionTitle(stable bool) string {
	if stable {
		return "Stable"
	}
	return "Unstable"
}

func lengthTable(t *sortbench.Table, stable bool, n int) *table.Table {
	algos := t.Algorithms(stable, n)

	// Column order follows the first algorithm; every algorithm sees the same
	// inputs in the same order.
	var dists []string
	if len(algos) > 0 {
		dists = lo.Map(t.Entries(stable, n, algos[0]), func(e sortbench.Entry, _ int) string {
			return e.Distribution
		})
	}

	rows := make([][]string, len(algos))
	failed := make([][]bool, len(algos))
	best := make([]int, len(dists))
	for i := range best {
		best[i] = -1
	}
	for i, name := range algos {
		entries := t.Entries(stable, n, name)
		rows[i] = make([]string, 0, len(dists)+1)
		rows[i] = append(rows[i], name)
		failed[i] = make([]bool, len(dists))
		for j, e := range entries {
			if j >= len(dists) {
				break
			}
			cell := formatOutcome(e.Outcome, n)
			if !e.Success {
				cell += failMark
				failed[i][j] = true
			} else if b := best[j]; b < 0 || e.Time < t.Entries(stable, n, algos[b])[j].Time {
				best[j] = i
			}
			rows[i] = append(rows[i], cell)
		}
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(append([]string{"Algorithm"}, dists...)...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row < 0 || row >= len(rows) || col == 0:
				return cellStyle
			case failed[row][col-1]:
				return cellStyle.Inherit(ErrorStyle)
			case best[col-1] == row && len(rows) > 1:
				return cellStyle.Inherit(SuccessStyle)
			default:
				return cellStyle
			}
		})
}

// formatOutcome renders the mean time per run and per element.
func formatOutcome(o sortbench.Outcome, n int) string {
	if n == 0 {
		return o.Time.String()
	}
	perElem := float64(o.Time) / float64(n)
	return fmt.Sprintf("%s (%.1fns/el)", o.Time.Round(roundTo(o.Time)), perElem)
}

// roundTo keeps about three significant digits of d.
func roundTo(d time.Duration) time.Duration {
	switch {
	case d >= time.Second:
		return time.Millisecond
	case d >= time.Millisecond:
		return time.Microsecond
	default:
		return 1
	}
}

func renderJSON(w io.Writer, v any) error {
	data, err := sonnet.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
