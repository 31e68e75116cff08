// Package queries contains the read operations of the tracking system.
// Each query is a validated value object paired with a handler that returns
// an immutable read model; queries never modify fleet state. Handlers reach
// the registry and the ingestion stores only through the ports contracts.
package queries
