// Package account provides user identity records and signup validation.
package account

import (
	"strings"
	"time"

	apperrors "github.com/louisbranch/carbonledger/internal/platform/errors"
)

var (
	// ErrEmailRequired indicates a missing signup email.
	ErrEmailRequired = apperrors.New(apperrors.CodeAccountEmailRequired, "email is required")
	// ErrPasswordRequired indicates a missing signup password.
	ErrPasswordRequired = apperrors.New(apperrors.CodeAccountPasswordRequired, "password is required")
	// ErrNameRequired indicates a missing signup name.
	ErrNameRequired = apperrors.New(apperrors.CodeAccountNameRequired, "name is required")
	// ErrInvalidUserType indicates a user type outside the known set.
	ErrInvalidUserType = apperrors.New(apperrors.CodeAccountInvalidUserType, "user type must be hospital or manufacturer")
)

// UserType classifies an account for leaderboard grouping.
type UserType string

const (
	// UserTypePending marks an account that has not chosen an identity yet.
	UserTypePending UserType = "pending"
	// UserTypeHospital marks a hospital account.
	UserTypeHospital UserType = "hospital"
	// UserTypeManufacturer marks a manufacturer account.
	UserTypeManufacturer UserType = "manufacturer"
)

// User represents a registered account. The store assigns IDs on insert.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	Name         string    `json:"name"`
	UserType     string    `json:"user_type"`
	CreatedAt    time.Time `json:"created_at"`
}

// DisplayName returns the name shown on leaderboards, falling back to the
// email address for accounts registered before names were collected.
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}

// SignupInput describes the fields collected by the signup form.
type SignupInput struct {
	Email    string
	Password string
	Name     string
}

// NormalizeSignupInput trims and lowercases input before validation. Emails
// are canonicalized to trimmed lowercase so lookups are case-insensitive.
func NormalizeSignupInput(input SignupInput) (SignupInput, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Name = strings.TrimSpace(input.Name)
	if input.Email == "" {
		return SignupInput{}, ErrEmailRequired
	}
	if input.Password == "" {
		return SignupInput{}, ErrPasswordRequired
	}
	if input.Name == "" {
		return SignupInput{}, ErrNameRequired
	}
	return input, nil
}

// NewUser creates a pending user from validated signup input. The password is
// hashed here so plaintext never reaches the store.
func NewUser(input SignupInput, now func() time.Time) (User, error) {
	if now == nil {
		now = time.Now
	}
	normalized, err := NormalizeSignupInput(input)
	if err != nil {
		return User{}, err
	}
	hash, err := HashPassword(normalized.Password)
	if err != nil {
		return User{}, err
	}
	return User{
		Email:        normalized.Email,
		PasswordHash: hash,
		Name:         normalized.Name,
		UserType:     string(UserTypePending),
		CreatedAt:    now().UTC(),
	}, nil
}

// ParseUserType validates an identity chosen on the identify page.
func ParseUserType(raw string) (UserType, error) {
	switch UserType(strings.ToLower(strings.TrimSpace(raw))) {
	case UserTypeHospital:
		return UserTypeHospital, nil
	case UserTypeManufacturer:
		return UserTypeManufacturer, nil
	default:
		return "", ErrInvalidUserType
	}
}

// LeaderboardGroup normalizes a stored user type into a leaderboard group.
// Anything that is not a manufacturer, including pending and legacy values,
// groups as a hospital so old accounts still appear.
func LeaderboardGroup(raw string) UserType {
	if UserType(strings.ToLower(strings.TrimSpace(raw))) == UserTypeManufacturer {
		return UserTypeManufacturer
	}
	return UserTypeHospital
}
