package account

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Max length constants for user-editable fields.
const (
	MaxEmailLength = 254
)

// Role constants. Operators can read everything; only admins mutate.
const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
)

// ValidRoles contains all valid role values.
var ValidRoles = []string{RoleAdmin, RoleOperator}

// Domain errors
var (
	ErrInvalidEmail     = errors.New("email must contain '@'")
	ErrEmptyEmail       = errors.New("email cannot be empty")
	ErrInvalidRole      = errors.New("role must be 'admin' or 'operator'")
	ErrEmptyPassword    = errors.New("password cannot be empty")
	ErrPasswordTooShort = errors.New("password must be at least 12 characters")
	ErrWrongPassword    = errors.New("incorrect password")
)

// Account is a local console operator. End users never have accounts here;
// they authenticate against the backend via OTP.
type Account struct {
	ID                     string
	Email                  string
	PasswordHash           string
	Role                   string
	CreatedAt              time.Time
	FailedLogins           int
	LockedUntil            time.Time
	PasswordChangeRequired bool
}

// Validate checks if the Account has valid data.
// PRE: Account struct is populated
// POST: Returns nil if valid, error otherwise
func (a *Account) Validate() error {
	if strings.TrimSpace(a.Email) == "" {
		return ErrEmptyEmail
	}
	if len(a.Email) > MaxEmailLength {
		return errors.New("email cannot exceed 254 characters")
	}
	if !strings.Contains(a.Email, "@") {
		return ErrInvalidEmail
	}
	if !isValidRole(a.Role) {
		return ErrInvalidRole
	}
	return nil
}

// SetPassword hashes and stores a password using bcrypt with cost 12.
// PRE: plaintext is non-empty and >= 12 characters
// POST: PasswordHash is set to bcrypt hash
func (a *Account) SetPassword(plaintext string) error {
	if plaintext == "" {
		return ErrEmptyPassword
	}
	if len(plaintext) < 12 {
		return ErrPasswordTooShort
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), 12)
	if err != nil {
		return err
	}
	a.PasswordHash = string(hash)
	return nil
}

// CheckPassword verifies a plaintext password against the stored hash.
// PRE: PasswordHash is set
// INVARIANT: Account fields are not mutated
func (a *Account) CheckPassword(plaintext string) error {
	if a.PasswordHash == "" {
		return ErrWrongPassword
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(plaintext)); err != nil {
		return ErrWrongPassword
	}
	return nil
}

// IsLocked returns true if the account is currently locked out.
// INVARIANT: Account fields are not mutated
func (a *Account) IsLocked() bool {
	if a.LockedUntil.IsZero() {
		return false
	}
	return time.Now().Before(a.LockedUntil)
}

// RecordFailedLogin increments the failed login counter and locks the account after 5 failures.
// POST: FailedLogins incremented; LockedUntil set if >= 5 failures
func (a *Account) RecordFailedLogin() {
	a.FailedLogins++
	if a.FailedLogins >= 5 {
		a.LockedUntil = time.Now().Add(15 * time.Minute)
	}
}

// ResetFailedLogins clears the failed login counter and lock.
// POST: FailedLogins is 0, LockedUntil is zero
func (a *Account) ResetFailedLogins() {
	a.FailedLogins = 0
	a.LockedUntil = time.Time{}
}

// IsAdmin returns true if the account has admin role.
// INVARIANT: Account fields are not mutated
func (a *Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}

func isValidRole(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}
