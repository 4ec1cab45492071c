// Package jwtauth verifies bearer tokens issued by the identity service.
package jwtauth

import (
	"context"
	"errors"
	"strings"

	"packflow/internal/core/domain/model/kernel"
	"packflow/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the token payload written at signup: the account id plus email
// and role. Only the id is trusted; role and permissions are always read from
// the directory.
type Claims struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// HMACAuthenticator implements ports.Authenticator for HS256 tokens.
type HMACAuthenticator struct {
	secret []byte
	parser *jwt.Parser
}

func NewHMACAuthenticator(secret string) (*HMACAuthenticator, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errs.NewValueIsRequiredError("jwt secret")
	}
	return &HMACAuthenticator{
		secret: []byte(secret),
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})),
	}, nil
}

// Authenticate returns the account id carried by token. The "id" claim wins
// over "sub" when both are present.
func (a *HMACAuthenticator) Authenticate(_ context.Context, token string) (kernel.UUID, error) {
	if token == "" {
		return kernel.UUID{}, errs.NewUnauthenticatedError("missing token")
	}

	var claims Claims
	_, err := a.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return kernel.UUID{}, errs.NewUnauthenticatedErrorWithCause("token expired", err)
		}
		return kernel.UUID{}, errs.NewUnauthenticatedErrorWithCause("invalid token", err)
	}

	subject := claims.ID
	if subject == "" {
		subject = claims.Subject
	}
	id, err := kernel.UUIDFromString(subject)
	if err != nil {
		return kernel.UUID{}, errs.NewUnauthenticatedErrorWithCause("token subject is not an account id", err)
	}
	return id, nil
}

// Issue signs a token for id. The seeder uses it to print tokens for local accounts.
func (a *HMACAuthenticator) Issue(id kernel.UUID, email, role string, claims jwt.RegisteredClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		ID:               id.String(),
		Email:            email,
		Role:             role,
		RegisteredClaims: claims,
	})
	return token.SignedString(a.secret)
}
