// Package kernel contains shared value objects used across the domain model.
//
// The package provides:
//   - UUID: entity identifier wrapping github.com/google/uuid
//   - Money: monetary amounts stored as integer cents with exact arithmetic
//
// Value objects in this package are immutable and validated at construction.
// Zero values that are meaningless (UUID) fail Validate; zero values that are
// meaningful (Money, 0.00) are valid.
package kernel
