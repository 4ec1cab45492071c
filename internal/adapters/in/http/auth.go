package http

import (
	"errors"
	"strings"

	"packflow/internal/core/domain/model/access"
	"packflow/internal/core/ports"
	"packflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const actorContextKey = "packflow.actor"

// BearerAuth resolves the bearer token to an active actor and stores it in the
// request context. Tokens of unknown, pending or deactivated accounts are
// rejected with 401.
func BearerAuth(authenticator ports.Authenticator, directory ports.ActorDirectory) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				return errs.NewUnauthenticatedError("missing bearer token")
			}

			ctx := c.Request().Context()
			id, err := authenticator.Authenticate(ctx, strings.TrimSpace(token))
			if err != nil {
				return err
			}

			actor, err := directory.Actor(ctx, id)
			if errors.Is(err, errs.ErrObjectNotFound) {
				return errs.NewUnauthenticatedErrorWithCause("unknown account", err)
			}
			if err != nil {
				return err
			}
			if !actor.CanSignIn() {
				return errs.NewUnauthenticatedError("account is not active")
			}

			c.Set(actorContextKey, actor)
			return next(c)
		}
	}
}

// actorFrom returns the actor stored by BearerAuth.
func actorFrom(c echo.Context) (*access.Actor, error) {
	actor, ok := c.Get(actorContextKey).(*access.Actor)
	if !ok || actor == nil {
		return nil, errs.NewUnauthenticatedError("no authenticated actor")
	}
	return actor, nil
}
