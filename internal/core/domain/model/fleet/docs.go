// Package fleet implements the unit registry, the sole owner and access
// point for all tracked units.
//
// A unit is created, moved, renamed, and decommissioned only through Registry
// operations; the unit type itself is package-private and its constructor is
// never exposed. Callers receive Report value snapshots that stay unchanged
// when the underlying unit later mutates.
//
// Every registry operation is all-or-nothing: inputs are validated before any
// state is touched, so a failed call leaves the registry and every unit
// exactly as they were.
package fleet
