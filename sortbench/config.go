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
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/ajroetker/go-sortbench/sortbench/contrib/workerpool"
)

// ErrInvalidConfig is wrapped by every configuration error Bench reports.
var ErrInvalidConfig = errors.New("sortbench: invalid configuration")

// Config controls one benchmark run.
type Config struct {
	// Lengths are the input sizes to generate. Must be non-empty, each >= 0,
	// without repeats.
	Lengths []int

	// Runs is how many independent copies of each input every method sorts.
	// Must be >= 1.
	Runs int

	// Pool, when set, clones inputs and verifies outputs in parallel.
	// Sorting itself always runs on the calling goroutine.
	Pool *workerpool.Pool

	// Logger receives one debug line per measurement and a summary at info
	// level. Nil discards all output.
	Logger *log.Logger
}

// Validate reports misuse of the run parameters.
func (c Config) Validate() error {
	if len(c.Lengths) == 0 {
		return fmt.Errorf("%w: no input lengths", ErrInvalidConfig)
	}
	seen := make(map[int]struct{}, len(c.Lengths))
	for _, n := range c.Lengths {
		if n < 0 {
			return fmt.Errorf("%w: negative input length %d", ErrInvalidConfig, n)
		}
		if _, dup := seen[n]; dup {
			return fmt.Errorf("%w: input length %d requested twice", ErrInvalidConfig, n)
		}
		seen[n] = struct{}{}
	}
	if c.Runs < 1 {
		return fmt.Errorf("%w: runs must be at least 1, got %d", ErrInvalidConfig, c.Runs)
	}
	return nil
}

func (c Config) logger() *log.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return log.New(io.Discard)
}
