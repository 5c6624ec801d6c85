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

//go:build arm64

package sortbench

import "golang.org/x/sys/cpu"

// ARM64 (AArch64) always has NEON (ASIMD); it is part of the ARMv8-A base
// architecture. SVE is optional.
func detectSIMD() SIMDLevel {
	switch {
	case cpu.ARM64.HasSVE:
		return SIMDSVE
	case cpu.ARM64.HasASIMD:
		return SIMDNEON
	default:
		return SIMDScalar
	}
}
