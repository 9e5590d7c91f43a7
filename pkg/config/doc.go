// Package config loads sweep's configuration with koanf.
//
// Layers are applied in order, each overriding the previous one:
//
//  1. Embedded defaults (embedded/defaults.toml)
//  2. User config: $XDG_CONFIG_HOME/sweep/config.toml
//  3. Project config: <root>/.sweep.toml
//  4. An explicit file passed with --config
//  5. Environment variables prefixed with SWEEP_
//
// Lists are replaced, not merged: a layer that defines [[targets]] replaces
// the built-in targets. Environment variables map the first underscore
// after the prefix to a dot, so SWEEP_OUTPUT_NO_COLOR sets output.no_color.
package config
