package domain

import (
	"time"
)

// User represents a registered account. A user owns zero or more advertisements.
type User struct {
	ID             int64     `json:"id"`
	Username       string    `json:"username"`
	HashedPassword string    `json:"-"` // Never expose password hash in JSON
	RegisteredAt   time.Time `json:"registered_at"`
}

// NewUserInput carries the fields needed to register a user.
// Password is plaintext; the store hashes it before insertion.
type NewUserInput struct {
	Username string
	Password string
}

// UserPatch is a partial update of a user. Nil fields are left untouched.
type UserPatch struct {
	Username *string
	Password *string // plaintext, hashed by the store
}

// IsEmpty reports whether the patch changes nothing.
func (p UserPatch) IsEmpty() bool {
	return p.Username == nil && p.Password == nil
}

// Validate checks the invariants that must hold for a stored user.
func (u *User) Validate() error {
	if u.Username == "" {
		return ErrEmptyUsername
	}
	if u.HashedPassword == "" {
		return ErrEmptyHashedPassword
	}
	return nil
}

// OwnerID implements Ownable: a user resource is owned by that same user.
func (u *User) OwnerID() int64 {
	return u.ID
}
