// Package services contains stateless domain services that operate across
// unit snapshots: the friendly-fire screen consulted before torpedo orders
// and the ranking of units by their position relative to the base.
//
// Services work entirely on fleet.Report values, so they never need (or get)
// access to live units.
package services
