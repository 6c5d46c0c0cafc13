package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/louisbranch/carbonledger/internal/account"
	apperrors "github.com/louisbranch/carbonledger/internal/platform/errors"
	"github.com/louisbranch/carbonledger/internal/storage"
)

var (
	errInvalidCredentials = apperrors.New(apperrors.CodeAccountInvalidCredentials, "invalid email or password")
	errEmailTaken         = apperrors.New(apperrors.CodeAccountEmailTaken, "an account with that email already exists")
)

type service struct {
	users storage.UserStore
	now   func() time.Time
}

// signIn verifies credentials against the stored hash. Unknown emails and
// wrong passwords return the same error so the form does not leak which
// accounts exist.
func (s service) signIn(ctx context.Context, email, password string) (account.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return account.User{}, errInvalidCredentials
	}
	user, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return account.User{}, errInvalidCredentials
		}
		return account.User{}, err
	}
	if !account.CheckPassword(user.PasswordHash, password) {
		return account.User{}, errInvalidCredentials
	}
	return user, nil
}

// signUp registers a pending account after checking email uniqueness.
func (s service) signUp(ctx context.Context, input account.SignupInput) (account.User, error) {
	normalized, err := account.NormalizeSignupInput(input)
	if err != nil {
		return account.User{}, err
	}
	if _, err := s.users.FindUserByEmail(ctx, normalized.Email); err == nil {
		return account.User{}, errEmailTaken
	} else if !errors.Is(err, storage.ErrNotFound) {
		return account.User{}, err
	}
	user, err := account.NewUser(normalized, s.now)
	if err != nil {
		return account.User{}, err
	}
	return s.users.AddUser(ctx, user)
}

// chooseIdentity records the leaderboard identity picked after signup.
func (s service) chooseIdentity(ctx context.Context, userID int64, rawType string) (account.User, error) {
	userType, err := account.ParseUserType(rawType)
	if err != nil {
		return account.User{}, err
	}
	return s.users.UpdateUserType(ctx, userID, string(userType))
}
