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
	"bufio"
	"fmt"
	"io"
	"strings"
)

var benchNameReplacer = strings.NewReplacer(" ", "_", "\t", "_", "/", "-")

// BenchName returns the Go benchmark name of a record:
// BenchmarkSort/<algorithm>/<distribution>/n=<length>, with whitespace
// replaced by underscores and slashes inside names by dashes.
func BenchName(r Record) string {
	return fmt.Sprintf("BenchmarkSort/%s/%s/n=%d",
		benchNameReplacer.Replace(r.Name),
		benchNameReplacer.Replace(r.Distribution),
		r.Length)
}

// WriteBenchFormat writes the table in the text format of `go test -bench`,
// one line per record in measurement order, so tools such as benchstat can
// compare runs. The iteration count is Runs; besides ns/op every line
// carries an "ok" metric that is 1 for sorted output and 0 otherwise.
func (t *Table) WriteBenchFormat(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "goos: %s\n", t.Host.GOOS)
	fmt.Fprintf(bw, "goarch: %s\n", t.Host.GOARCH)
	fmt.Fprintf(bw, "pkg: github.com/ajroetker/go-sortbench\n")
	fmt.Fprintf(bw, "simd: %s\n", t.Host.SIMD)
	for _, r := range t.Records {
		ok := 0
		if r.Success {
			ok = 1
		}
		fmt.Fprintf(bw, "%s\t%d\t%d ns/op\t%d ok\n", BenchName(r), t.Runs, r.Time.Nanoseconds(), ok)
	}
	return bw.Flush()
}
