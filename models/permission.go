package models

// Scope names understood by the resource handlers. The authorization core
// itself treats scopes as opaque strings; these constants only document the
// convention used when seeding grants at registration time.
const (
	// ScopeShopper marks an account allowed to use the storefront.
	ScopeShopper = "shopper"

	// ScopeMe allows an account to operate on its own profile and carts.
	ScopeMe = "me"

	// ScopeAdmin allows administrative operations on any resource.
	ScopeAdmin = "admin"
)

// BaseScopes is granted to every newly registered account.
var BaseScopes = []string{ScopeShopper, ScopeMe}

// AdminScopes is additionally granted when registration requests the
// administrative flag.
var AdminScopes = []string{ScopeAdmin}

// Permission represents one scope granted to one user. Grants are created at
// registration, read on every authenticated request and removed only when the
// owning account is deleted.
type Permission struct {
	PermissionID int64  `json:"-"`
	UserID       int64  `json:"user_id"`
	Scope        string `json:"scope"`
}

// TableName returns the name of the database table
// associated with the Permission model.
func (p Permission) TableName() string {
	return "permissions"
}
