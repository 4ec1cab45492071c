// Package access models who may do what in the staff portal.
//
// Every staff account carries a permission Level per Section. Sections are a closed
// enumeration; a section missing from an account's permission set is NoAccess,
// matching how accounts are provisioned.
//
// Key rules:
//   - Submitting orders requires ReadWrite on CreateOrder
//   - Each workflow stage is gated by ReadWrite on its own board section
//   - Resolving complaints requires ReadWrite on Complaints
//   - Pending and inactive accounts never act on the workflow
package access
