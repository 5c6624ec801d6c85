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
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
)

// newRootCmd builds the command tree. Each call returns an independent tree,
// so tests can run commands in isolation.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sortbench",
		Short: "Benchmark in-place sorting algorithms",
		Long: TitleStyle.Render("sortbench") + SubtitleStyle.Render(" - sorting algorithm benchmarks") + `

sortbench generates synthetic inputs (sorted, reversed, shuffled, uniform
and more) at several sizes, sorts private copies of each with every selected
algorithm, checks the output is in order and reports the mean time per run,
grouped by whether the algorithm claims to be stable.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file (default is $XDG_CONFIG_HOME/sortbench/sortbench.toml)")

	root.AddCommand(newRunCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newConfigCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the sortbench version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "sortbench %s\n", versionString())
			return err
		},
	}
}

func versionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(versionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		return 1
	}
	return 0
}
