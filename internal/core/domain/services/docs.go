// Package services provides domain services that don't naturally belong to a
// single aggregate root.
//
// The package includes:
//   - OrderNumberSequencer: produces the next ORD-YYYYMMDD-NNNN order number
//     from an atomic per-day counter
package services
