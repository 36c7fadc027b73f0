// Package policy holds the authorization rules gating every protected
// operation. Services call these checks explicitly at use-case entry with
// the actor passed in as an argument; there is no ambient session state.
package policy

import "github.com/lenslease/marketplace-api/internal/core/domain"

// Actor is the authenticated identity performing an operation.
// The zero value is an unauthenticated caller.
type Actor struct {
	Email string
	Role  domain.Role
}

// Authenticated reports whether the actor carries an identity.
func (a Actor) Authenticated() bool {
	return a.Email != ""
}

// Require allows the operation only for an authenticated actor holding the
// given role. An unauthenticated caller and a role mismatch yield distinct
// errors so the boundary can redirect to login versus flag the access.
func Require(actor Actor, role domain.Role) error {
	if !actor.Authenticated() {
		return domain.ErrUnauthenticated
	}
	if actor.Role != role {
		return domain.ErrUnauthorized
	}
	return nil
}

// RequireOwner allows the operation only when the actor is the owner of the
// resource.
func RequireOwner(actor Actor, ownerEmail string) error {
	if !actor.Authenticated() {
		return domain.ErrUnauthenticated
	}
	if actor.Email != ownerEmail {
		return domain.ErrUnauthorized
	}
	return nil
}

// Owns reports ownership without raising an error. Booking actions use this
// for their "not found for you" semantics where a mismatch is silently
// ignored rather than surfaced.
func Owns(actor Actor, ownerEmail string) bool {
	return actor.Authenticated() && actor.Email == ownerEmail
}
