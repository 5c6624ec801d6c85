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

// Command sortbench benchmarks in-place sorting algorithms over synthetic
// input distributions and prints the results.
//
// Usage:
//
//	sortbench run --lengths 100,1000 --runs 3 --algo quick,std --dist shuffled,sorted
//	sortbench run --type uint16 --format bench > new.txt   # benchstat-compatible
//	sortbench list                                         # available keys
//	sortbench config show                                  # effective settings as TOML
//
// Settings come from defaults, then sortbench.toml (in the user config
// directory or the working directory, or --config), then SORTBENCH_*
// environment variables, then flags.
package main

import "os"

func main() {
	os.Exit(Execute())
}
