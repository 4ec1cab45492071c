package access

import (
	"errors"
	"strings"

	"packflow/internal/core/domain/model/kernel"
	"packflow/internal/pkg/errs"
)

// ErrActorIsNotConstructed is returned when an Actor was not built via NewActor.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Identity is the displayable part of an account, used to resolve actor references
// on orders and complaints.
type Identity struct {
	ID       kernel.UUID
	FullName string
	Email    string
}

// Actor is the authenticated account performing a request.
type Actor struct {
	id          kernel.UUID
	fullName    string
	email       string
	role        Role
	active      bool
	permissions Permissions

	isConstructed bool
}

// NewActor builds an Actor from a directory record.
func NewActor(
	id kernel.UUID,
	fullName, email string,
	role Role,
	active bool,
	permissions Permissions,
) (*Actor, error) {
	var emailErr error
	if strings.TrimSpace(email) == "" {
		emailErr = errs.NewValueIsRequiredError("email")
	}
	var roleErr error
	if _, ok := roleCodes[role]; !ok {
		roleErr = errs.NewValueIsInvalidError("role")
	}
	if err := errors.Join(id.Validate(), emailErr, roleErr); err != nil {
		return nil, err
	}

	return &Actor{
		id:            id,
		fullName:      fullName,
		email:         email,
		role:          role,
		active:        active,
		permissions:   permissions,
		isConstructed: true,
	}, nil
}

// Validate ensures the Actor was built through NewActor.
func (a *Actor) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrActorIsNotConstructed
	}
	return nil
}

func (a *Actor) ID() kernel.UUID          { return a.id }
func (a *Actor) FullName() string         { return a.fullName }
func (a *Actor) Email() string            { return a.email }
func (a *Actor) Role() Role               { return a.role }
func (a *Actor) Active() bool             { return a.active }
func (a *Actor) Permissions() Permissions { return a.permissions }

// Identity returns the displayable reference for this actor.
func (a *Actor) Identity() Identity {
	return Identity{ID: a.id, FullName: a.fullName, Email: a.email}
}

// CanSignIn reports whether the account may act at all. Pending signups and
// deactivated accounts may not.
func (a *Actor) CanSignIn() bool {
	return a.active && (a.role == Admin || a.role == Staff)
}

// Require returns a PermissionDeniedError unless the actor holds at least level on s.
func (a *Actor) Require(s Section, level Level) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if !a.CanSignIn() || !a.permissions.Level(s).Allows(level) {
		return errs.NewPermissionDeniedError(s.String(), level.String())
	}
	return nil
}
