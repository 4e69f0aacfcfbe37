// Package kernel contains shared value objects used across the domain model.
// It currently provides UUID, an immutable identifier type wrapping
// github.com/google/uuid, whose zero value is invalid and must be created
// through one of the constructor functions.
package kernel
