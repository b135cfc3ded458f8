package domain

import "errors"

// Role classifies what an identity may do. Exactly two roles exist.
type Role string

const (
	RoleUser  Role = "User"
	RoleAdmin Role = "Admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

var ErrMissingCredentials = errors.New("email and password are required")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidRole = errors.New("invalid role")
var ErrDuplicateEmail = errors.New("email already registered")
var ErrUserNotFound = errors.New("user not found")

// Identity models a registered account. Email is the unique key; the
// password is stored only as a bcrypt hash.
type Identity struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
}
