// Package testutil provides utilities for testing sweep components.
//
// Key components:
//   - MemoryFS: in-memory filesystem with error injection and a record of
//     every directory listed, for fast and isolated scanner tests
//   - Tree: builds a real directory tree under t.TempDir() from a compact
//     description, for tests that need the OS filesystem
//
// All test data should be defined inline, not in external files.
package testutil
