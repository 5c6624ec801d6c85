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
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sugawarayuuta/sonnet"
	"golang.org/x/tools/benchmark/parse"

	"github.com/ajroetker/go-sortbench/internal/config"
	"github.com/ajroetker/go-sortbench/sortbench"
)

// execute runs the CLI with args and an empty config directory.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

var smallRun = []string{
	"run",
	"--lengths", "10,50",
	"--runs", "1",
	"--algo", "quick,radix",
	"--dist", "sorted,shuffled",
	"--seed", "7",
	"--workers", "1",
}

func TestRunTable(t *testing.T) {
	out, stderr, err := execute(t, smallRun...)
	require.NoError(t, err)

	for _, want := range []string{"Unstable sorts", "Stable sorts", "Hybrid quicksort", "LSD radix sort", "Sorted", "Shuffled", "n = 10", "n = 50"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, failMark)
	assert.Contains(t, stderr, "seed=7")
}

func TestRunJSON(t *testing.T) {
	out, _, err := execute(t, append(smallRun, "--format", "json", "--type", "uint16")...)
	require.NoError(t, err)

	var doc struct {
		Seed        uint64 `json:"seed"`
		ElementType string `json:"element_type"`
		Table       struct {
			Runs    int   `json:"runs"`
			Lengths []int `json:"lengths"`
			Records []struct {
				Name    string `json:"name"`
				Success bool   `json:"success"`
			} `json:"records"`
		} `json:"table"`
	}
	require.NoError(t, sonnet.Unmarshal([]byte(out), &doc))
	assert.Equal(t, uint64(7), doc.Seed)
	assert.Equal(t, "uint16", doc.ElementType)
	assert.Equal(t, 1, doc.Table.Runs)
	assert.Equal(t, []int{10, 50}, doc.Table.Lengths)
	assert.Len(t, doc.Table.Records, 2*2*2)
	for _, r := range doc.Table.Records {
		assert.True(t, r.Success, r.Name)
	}
}

func TestRunBenchFormat(t *testing.T) {
	out, _, err := execute(t, append(smallRun, "--format", "bench")...)
	require.NoError(t, err)

	set, err := parse.ParseSet(strings.NewReader(out))
	require.NoError(t, err)
	assert.Len(t, set, 8)
	require.Contains(t, set, "BenchmarkSort/Hybrid_quicksort/Sorted/n=10")
	b := set["BenchmarkSort/LSD_radix_sort/Shuffled/n=50"]
	require.Len(t, b, 1)
	assert.Equal(t, 1, b[0].N)
}

func TestRunEveryElementType(t *testing.T) {
	for _, typ := range config.ElementTypes {
		t.Run(typ, func(t *testing.T) {
			_, _, err := execute(t, "run", "--lengths", "0,30", "--runs", "2", "--type", typ, "--format", "bench", "--log-level", "error")
			assert.NoError(t, err)
		})
	}
}

func TestRunInvalidConfig(t *testing.T) {
	_, _, err := execute(t, "run", "--runs", "0")
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, _, err = execute(t, "run", "--algo", "bogo")
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, _, err = execute(t, "run", "--type", "float64")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestRunRejectsArgs(t *testing.T) {
	_, _, err := execute(t, "run", "extra")
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	out, _, err := execute(t, "list")
	require.NoError(t, err)
	for _, want := range []string{"Algorithms", "radix", "LSD radix sort", "std-stable", "Distributions", "push-middle", "Push middle int", "uint64"} {
		assert.Contains(t, out, want)
	}
}

func TestConfigShow(t *testing.T) {
	out, _, err := execute(t, "config", "show", "--runs", "5", "--type", "int64")
	require.NoError(t, err)
	assert.Contains(t, out, "runs = 5")
	assert.Contains(t, out, "element_type = 'int64'")
}

func TestConfigPath(t *testing.T) {
	out, _, err := execute(t, "config", "path")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "sortbench.toml"), out)
}

func TestFormatOutcome(t *testing.T) {
	assert.Equal(t, "0s", formatOutcome(sortbench.Outcome{}, 0))
	assert.Equal(t, "1.5µs (15.0ns/el)", formatOutcome(sortbench.Outcome{Time: 1500, Success: true}, 100))
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "sortbench dev (built from source)\n", out)
}
