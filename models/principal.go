package models

// Principal is the transient result of authenticating a request: the resolved
// user identifier plus the set of scopes currently granted to it.
//
// A Principal is recomputed from the permission store on every request and is
// never cached across requests, so a revoked grant takes effect on the very
// next call. The value is immutable after construction and safe to share.
type Principal struct {
	// UserID is the identifier of the authenticated account.
	UserID int64

	// scopes is the set of scope names granted to the account.
	scopes map[string]struct{}
}

// NewPrincipal builds a Principal from a user id and a list of scope names.
// Duplicate scopes collapse naturally.
func NewPrincipal(userID int64, scopes []string) Principal {
	set := make(map[string]struct{}, len(scopes))
	for _, scope := range scopes {
		set[scope] = struct{}{}
	}

	return Principal{UserID: userID, scopes: set}
}

// HasScope reports whether the principal holds the given scope.
func (p Principal) HasScope(scope string) bool {
	_, ok := p.scopes[scope]
	return ok
}

// Scopes returns the granted scope names in unspecified order.
func (p Principal) Scopes() []string {
	scopes := make([]string, 0, len(p.scopes))
	for scope := range p.scopes {
		scopes = append(scopes, scope)
	}

	return scopes
}
