package domain

import (
	"errors"
	"time"
)

// ErrUnauthenticated marks a request that carries no verified subject at
// all, as opposed to one whose subject lacks the required role.
var ErrUnauthenticated = errors.New("missing authentication claims")

// ClaimSet is the decoded, already-verified payload of a bearer token.
// Signature and expiry checks happen upstream; the guard trusts its input.
type ClaimSet struct {
	Subject   string
	Role      Role
	ExpiresAt time.Time
}

// Decision is the outcome of an authorization check. Never persisted.
type Decision struct {
	Allowed bool
	Reason  string
}

// Authorize decides whether the caller behind claims may perform an
// operation restricted to required. A missing role claim denies; it is
// a denial, not a distinct error. Pure function, no side effects.
func Authorize(claims ClaimSet, required Role) Decision {
	if claims.Role == "" {
		return Decision{Reason: "no role claim present"}
	}
	if claims.Role != required {
		return Decision{Reason: string(required) + " role required"}
	}
	return Decision{Allowed: true}
}
