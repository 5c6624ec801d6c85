package sortbench

import (
	"os"
	"runtime"
	"strconv"
)

// SIMDLevel is the widest vector instruction set the host CPU reports.
// The algorithms here are scalar; the level is recorded so results from
// different machines can be told apart.
type SIMDLevel int

const (
	// SIMDScalar indicates no usable vector extension was detected.
	SIMDScalar SIMDLevel = iota

	// SIMDSSE2 indicates SSE2 instructions (x86-64 baseline).
	SIMDSSE2

	// SIMDAVX2 indicates AVX2 instructions (256-bit SIMD).
	SIMDAVX2

	// SIMDAVX512 indicates AVX-512 instructions (512-bit SIMD).
	SIMDAVX512

	// SIMDNEON indicates ARM NEON instructions (128-bit SIMD).
	SIMDNEON

	// SIMDSVE indicates ARM SVE instructions (scalable vector).
	SIMDSVE
)

// String returns a human-readable name for the level.
func (l SIMDLevel) String() string {
	switch l {
	case SIMDScalar:
		return "scalar"
	case SIMDSSE2:
		return "sse2"
	case SIMDAVX2:
		return "avx2"
	case SIMDAVX512:
		return "avx512"
	case SIMDNEON:
		return "neon"
	case SIMDSVE:
		return "sve"
	default:
		return "unknown"
	}
}

// Host describes the machine a Table was measured on.
type Host struct {
	GOOS       string `json:"goos"`
	GOARCH     string `json:"goarch"`
	GoVersion  string `json:"go_version"`
	NumCPU     int    `json:"num_cpu"`
	GOMAXPROCS int    `json:"gomaxprocs"`
	SIMD       string `json:"simd"`
}

// DetectHost describes the current process and CPU.
func DetectHost() Host {
	level := SIMDScalar
	if !noSimdEnv() {
		level = detectSIMD()
	}
	return Host{
		GOOS:       runtime.GOOS,
		GOARCH:     runtime.GOARCH,
		GoVersion:  runtime.Version(),
		NumCPU:     runtime.NumCPU(),
		GOMAXPROCS: runtime.GOMAXPROCS(0),
		SIMD:       level.String(),
	}
}

// noSimdEnv checks if the SORTBENCH_NO_SIMD environment variable is set.
// When set, the host is reported as scalar regardless of CPU capabilities.
func noSimdEnv() bool {
	val := os.Getenv("SORTBENCH_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
