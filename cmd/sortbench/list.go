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
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-sortbench/internal/config"
	"github.com/ajroetker/go-sortbench/sortbench/contrib/dist"
	"github.com/ajroetker/go-sortbench/sortbench/contrib/sort"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available algorithms, distributions and element types",
		Long: `List the keys accepted by --algo, --dist and --type.

Distributions also accept "shuffled-N" for a shuffle over N distinct values.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeList(cmd.OutOrStdout())
		},
	}
}

func writeList(w io.Writer) error {
	algos := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("Key", "Algorithm", "Stable").
		StyleFunc(listStyle)
	algoKeys := sort.Keys()
	for i, m := range sort.All[int32]() {
		algos.Row(algoKeys[i], m.Name(), yesNo(m.Stable()))
	}

	dists := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("Key", "Distribution").
		StyleFunc(listStyle)
	distKeys := dist.Keys()
	for i, d := range dist.All[int32]() {
		dists.Row(distKeys[i], d.Name())
	}

	_, err := fmt.Fprintf(w, "%s\n%s\n\n%s\n%s\n\n%s\n%s\n",
		TitleStyle.Render("Algorithms"), algos.Render(),
		TitleStyle.Render("Distributions"), dists.Render(),
		TitleStyle.Render("Element types"), SubtitleStyle.Render(strings.Join(config.ElementTypes, ", ")))
	return err
}

func listStyle(row, _ int) lipgloss.Style {
	if row == table.HeaderRow {
		return headerStyle
	}
	return cellStyle
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
