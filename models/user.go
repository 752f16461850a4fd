package models

import "time"

// User represents a registered account used for authentication and
// authorization. Sensitive fields must never be exposed outside trusted
// boundaries.
type User struct {
	// UserID is the internal unique identifier of the user,
	// assigned by the persistence layer.
	UserID int64 `json:"id"`

	// Username is the unique, case-sensitive login identifier.
	// Uniqueness is enforced by the database.
	Username string `json:"username"`

	// PasswordHash stores the bcrypt digest of the user's password.
	// This value MUST be a hash, never plaintext, and is excluded from JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// CreateUserRequest is the registration payload accepted by POST /users.
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`

	// Admin requests the administrative scope set in addition to the
	// base scopes every new account receives.
	Admin bool `json:"admin,omitempty"`
}

// UpdateUserRequest carries optional profile mutations for PATCH /users/me.
// Nil fields are left untouched.
type UpdateUserRequest struct {
	Username *string `json:"username,omitempty"`
	Password *string `json:"password,omitempty"`
}

// UserList is the paginated response envelope for user listings.
type UserList struct {
	Skip         uint64 `json:"skip"`
	Limit        uint64 `json:"limit"`
	TotalResults int64  `json:"total_results"`
	Users        []User `json:"users"`
}
