// Package authz decides ALLOW or DENY for an authenticated identity against
// an operation's required capability: a set of allowed roles, ownership of
// the target resource, or both. Admin is a universal override. Checks run
// before any mutation; a DENY maps to HTTP 403 at the delivery layer.
package authz

// Identity is the resolved caller, established once per request after
// credential verification.
type Identity struct {
	ID   string
	Role string
}

// HasRole reports whether the identity's role is in allowed, with the admin
// override applied.
func HasRole(actor Identity, allowed ...string) bool {
	if actor.Role == "admin" {
		return true
	}
	for _, role := range allowed {
		if actor.Role == role {
			return true
		}
	}
	return false
}

// Owns reports whether the identity owns the resource. Admin overrides.
func Owns(actor Identity, ownerID string) bool {
	if actor.Role == "admin" {
		return true
	}
	return actor.ID != "" && actor.ID == ownerID
}
