package jsonfile

import (
	"context"
	"encoding/json"
	"os"

	"github.com/louisbranch/carbonledger/internal/account"
	"github.com/louisbranch/carbonledger/internal/storage"
)

// usersFile mirrors the on-disk shape of users.json.
type usersFile struct {
	Users []account.User `json:"users"`
}

// loadUsers reads the full user list, applying the defaulting policy.
func (s *Store) loadUsers() []account.User {
	raw, err := os.ReadFile(s.usersPath)
	if err != nil {
		return nil
	}
	var file usersFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil
	}
	return file.Users
}

func (s *Store) saveUsers(users []account.User) error {
	if users == nil {
		users = []account.User{}
	}
	return writeFile(s.usersPath, usersFile{Users: users})
}

// AddUser persists a new user with the next ID.
func (s *Store) AddUser(_ context.Context, u account.User) (account.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := s.loadUsers()
	var maxID int64
	for _, existing := range users {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	u.ID = maxID + 1
	users = append(users, u)
	if err := s.saveUsers(users); err != nil {
		return account.User{}, err
	}
	return u, nil
}

// GetUser returns the user with the given ID.
func (s *Store) GetUser(_ context.Context, id int64) (account.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.loadUsers() {
		if u.ID == id {
			return u, nil
		}
	}
	return account.User{}, storage.ErrNotFound
}

// FindUserByEmail returns the user with the given canonical email.
func (s *Store) FindUserByEmail(_ context.Context, email string) (account.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.loadUsers() {
		if u.Email == email {
			return u, nil
		}
	}
	return account.User{}, storage.ErrNotFound
}

// UpdateUserType sets the user's type and rewrites the store.
func (s *Store) UpdateUserType(_ context.Context, id int64, userType string) (account.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := s.loadUsers()
	for i := range users {
		if users[i].ID == id {
			users[i].UserType = userType
			if err := s.saveUsers(users); err != nil {
				return account.User{}, err
			}
			return users[i], nil
		}
	}
	return account.User{}, storage.ErrNotFound
}

// ListUsers returns every registered user.
func (s *Store) ListUsers(_ context.Context) ([]account.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadUsers(), nil
}
