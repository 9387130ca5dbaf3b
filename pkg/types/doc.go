// Package types defines the command vocabulary shared by the simulator's
// front ends: the script parser, the session facade, the CLI and the TUI.
//
// Design goals:
//   - Small, copyable values; no pointers into allocator state.
//   - One command type for every source (script line, menu choice, key press).
//
// This package has no dependencies beyond the standard library.
package types
