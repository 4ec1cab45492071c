// Package services provides domain services that coordinate the acting staff
// member with the aggregates they act on.
//
// The package includes:
//   - StageGate: authorizes submissions, stage transitions and complaint
//     resolution against the actor's permission matrix, and applies stamped
//     transitions to orders
//
// Permission checks live here rather than on the aggregates so Order and
// Complaint stay unaware of accounts.
package services
