// Package identity isolates who-is-calling resolution from the handlers.
// TrustedParam takes the caller-supplied employer_id/applicant_id request
// parameters at face value, which is what existing clients send. BearerToken
// derives the actor from a verified JWT instead, so a real authentication
// layer can be swapped in without changing any endpoint contract.
package identity

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"go-jobportal-api/internal/core/auth"
)

var (
	// ErrMissingActor: the request carries no usable actor parameter.
	ErrMissingActor = errors.New("missing actor id")
	// ErrBadCredentials: a token was presented but did not verify.
	ErrBadCredentials = errors.New("invalid credentials")
)

// Resolver yields the acting user's id for a request. param names the
// query parameter the trusted mode reads (employer_id, applicant_id).
type Resolver interface {
	ActorID(c *gin.Context, param string) (string, error)
}

// TrustedParam trusts the caller-supplied id parameter verbatim.
type TrustedParam struct{}

func (TrustedParam) ActorID(c *gin.Context, param string) (string, error) {
	id := strings.TrimSpace(c.Query(param))
	if id == "" {
		return "", ErrMissingActor
	}
	return id, nil
}

// BearerToken resolves the actor from an Authorization: Bearer JWT and
// ignores the query parameter entirely.
type BearerToken struct {
	Tokens *auth.JWTer
}

func (b BearerToken) ActorID(c *gin.Context, _ string) (string, error) {
	ah := c.GetHeader("Authorization")
	if !strings.HasPrefix(ah, "Bearer ") {
		return "", ErrMissingActor
	}
	claims, err := b.Tokens.Parse(strings.TrimPrefix(ah, "Bearer "))
	if err != nil {
		return "", ErrBadCredentials
	}
	return claims.UID, nil
}
