// Package services contains stateless domain services that operate across
// aggregates. RoutePlanner orders a driver's active stops using simulated
// estimates; it is deliberately a deterministic mock rather than a real
// routing engine.
package services
