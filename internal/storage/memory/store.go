// Package memory implements storage in process memory. It exists for tests
// and local experiments that should not touch the filesystem; semantics match
// the jsonfile store, including max+1 ID assignment.
package memory

import (
	"context"
	"sync"

	"github.com/louisbranch/carbonledger/internal/account"
	"github.com/louisbranch/carbonledger/internal/emissions"
	"github.com/louisbranch/carbonledger/internal/market"
	"github.com/louisbranch/carbonledger/internal/storage"
)

// Store keeps all state in memory.
type Store struct {
	mu         sync.Mutex
	users      []account.User
	records    []emissions.Record
	marketData *market.Data
}

// New returns an empty in-memory store.
func New() *Store {
	return &Store{}
}

// SetMarketData seeds the reference dataset returned by LoadMarketData.
func (s *Store) SetMarketData(data *market.Data) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.marketData = data
}

// AddUser persists a new user with the next ID.
func (s *Store) AddUser(_ context.Context, u account.User) (account.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var maxID int64
	for _, existing := range s.users {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	u.ID = maxID + 1
	s.users = append(s.users, u)
	return u, nil
}

// GetUser returns the user with the given ID.
func (s *Store) GetUser(_ context.Context, id int64) (account.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
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
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return account.User{}, storage.ErrNotFound
}

// UpdateUserType sets the user's type.
func (s *Store) UpdateUserType(_ context.Context, id int64, userType string) (account.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i].UserType = userType
			return s.users[i], nil
		}
	}
	return account.User{}, storage.ErrNotFound
}

// ListUsers returns every registered user.
func (s *Store) ListUsers(_ context.Context) ([]account.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]account.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

// AddEmission appends a record with the next ID.
func (s *Store) AddEmission(_ context.Context, record emissions.Record) (emissions.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var maxID int64
	for _, existing := range s.records {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	record.ID = maxID + 1
	s.records = append(s.records, record)
	return record, nil
}

// ListEmissions returns the full emissions log.
func (s *Store) ListEmissions(_ context.Context) ([]emissions.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]emissions.Record, len(s.records))
	copy(out, s.records)
	return out, nil
}

// LoadMarketData returns the seeded dataset, nil when none was set.
func (s *Store) LoadMarketData(_ context.Context) (*market.Data, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.marketData, nil
}
