// Package queries contains the read side of the service. Query handlers run
// raw SQL through GORM and return flat read models with actor references
// already resolved to displayable identities, so HTTP adapters can serialize
// them directly.
package queries
