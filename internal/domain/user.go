package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// UserRole determines a user's permission level.
type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAdmin    UserRole = "admin"
)

// IsValid checks if the role is a known value.
func (r UserRole) IsValid() bool {
	return r == RoleCustomer || r == RoleAdmin
}

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// User is an account holder. PasswordHash is a bcrypt hash and is never
// serialized.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Phone        string    `json:"phone,omitempty"`
	Role         UserRole  `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Normalize lowercases the email address for uniqueness checks.
func (u *User) Normalize() {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
}

// Validate checks the user invariants.
func (u *User) Validate() error {
	if !emailRegex.MatchString(u.Email) {
		return fmt.Errorf("%w: email %q is not a valid address", ErrInvalidEntity, u.Email)
	}
	if u.FirstName == "" || u.LastName == "" {
		return fmt.Errorf("%w: first_name and last_name are required", ErrInvalidEntity)
	}
	if u.Role != "" && !u.Role.IsValid() {
		return fmt.Errorf("%w: unknown role %q", ErrInvalidEntity, u.Role)
	}
	return nil
}
