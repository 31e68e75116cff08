// Package filestore implements the outbound store ports over plain text
// files. Movement reports and sensor readouts live in directories of
// per-unit files named <serial>.txt; the file stem is the unit's serial
// number. Missing directories and files map to not-found errors so handlers
// can treat an absent report like an absent unit.
package filestore
