// Package paths provides centralized path handling for sweep.
//
// It follows the XDG Base Directory specification for the few files sweep
// reads or writes outside of the scanned tree:
//
//   - Config: $XDG_CONFIG_HOME/sweep/config.toml (user configuration)
//   - State: $XDG_STATE_HOME/sweep/sweep.log (log file)
//
// # Environment Variables
//
//   - SWEEP_CONFIG_DIR: Override the config directory
//   - SWEEP_STATE_DIR: Override the state directory
//
// Project-level configuration lives in the scan root as .sweep.toml.
package paths
