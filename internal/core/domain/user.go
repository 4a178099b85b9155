package domain

import (
	"errors"
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Display name length bounds, enforced on the trimmed value.
const (
	DisplayNameMinLen = 3
	DisplayNameMaxLen = 30
)

var ErrEmailTaken = errors.New("email already in use")
var ErrUserNotFound = errors.New("user not found")
var ErrBadPassword = errors.New("incorrect password")
var ErrInvalidRole = errors.New("invalid role")

// Token verification failures. The auth gate collapses all of them into a
// 401, but services and tests distinguish them.
var ErrTokenMalformed = errors.New("token malformed")
var ErrTokenExpired = errors.New("token expired")
var ErrTokenInvalid = errors.New("token signature invalid")

// User models a registered account. PasswordHash is never serialized.
type User struct {
	ID           string    `json:"id"`
	DisplayName  string    `json:"displayName"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}
