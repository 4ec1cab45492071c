// Package order provides the Order aggregate and the workflow state machine that
// drives it through the packaging pipeline.
//
// The package includes:
//   - Order: the aggregate root owning status, items and per-stage audit stamps
//   - Status: the 19-member workflow enumeration with its transition table
//   - Stage: the six points where staff act, each gated by a permission section
//   - Filter: the status-derived board views shared by every section screen
//
// Key business rules:
//   - Orders are submitted in NEW with at least one valid item
//   - Only the transition table moves an order; every other move is InvalidTransition
//   - REJECTED, every *_FAILED, DISPATCH_REACHED and DISPATCH_COULD_NOT are terminal
//   - Each accepted move stamps its stage with (actor, time) and emits an AdvancedEvent
package order
