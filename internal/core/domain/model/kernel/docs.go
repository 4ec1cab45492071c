// Package kernel holds the value objects shared by every aggregate in the
// packflow domain: UUID identifiers and audit Stamps.
package kernel
