package ports

import (
	"context"

	"packflow/internal/core/domain/model/access"
	"packflow/internal/core/domain/model/kernel"
)

// Authenticator verifies a bearer token issued by the identity service and
// returns the subject's id. Invalid or expired tokens yield an
// UnauthenticatedError.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (kernel.UUID, error)
}

// ActorDirectory resolves staff accounts. Accounts themselves are managed
// outside this service.
type ActorDirectory interface {
	// Actor loads the account with its role, activity flag and permission
	// matrix, or returns an ObjectNotFoundError.
	Actor(ctx context.Context, id kernel.UUID) (*access.Actor, error)
}
