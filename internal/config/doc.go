// Package config loads sortbench run settings from defaults, an optional
// TOML file, SORTBENCH_* environment variables and command-line flags, in
// increasing order of precedence.
package config
