// Package storage defines the persistence capabilities consumed by the
// application. Implementations live in subpackages; services depend only on
// these interfaces so tests can substitute an in-memory fixture.
package storage

import (
	"context"

	"github.com/louisbranch/carbonledger/internal/account"
	"github.com/louisbranch/carbonledger/internal/emissions"
	"github.com/louisbranch/carbonledger/internal/market"
	"github.com/louisbranch/carbonledger/internal/platform/errors"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New(errors.CodeNotFound, "record not found")

// UserStore persists registered user records.
type UserStore interface {
	// AddUser persists a new user, assigning the next ID (max existing + 1),
	// and returns the stored record.
	AddUser(ctx context.Context, u account.User) (account.User, error)
	// GetUser returns the user with the given ID or ErrNotFound.
	GetUser(ctx context.Context, id int64) (account.User, error)
	// FindUserByEmail returns the user with the given canonical email or
	// ErrNotFound.
	FindUserByEmail(ctx context.Context, email string) (account.User, error)
	// UpdateUserType sets the user's type and returns the updated record, or
	// ErrNotFound when no such user exists.
	UpdateUserType(ctx context.Context, id int64, userType string) (account.User, error)
	// ListUsers returns every registered user.
	ListUsers(ctx context.Context) ([]account.User, error)
}

// EmissionStore persists the append-only emissions log.
type EmissionStore interface {
	// AddEmission appends a record, assigning the next ID (max existing + 1),
	// and returns the stored record.
	AddEmission(ctx context.Context, record emissions.Record) (emissions.Record, error)
	// ListEmissions returns the full emissions log.
	ListEmissions(ctx context.Context) ([]emissions.Record, error)
}

// MarketStore reads the reference decarbonisation dataset.
type MarketStore interface {
	// LoadMarketData returns the dataset, or nil (and no error) when the
	// dataset is absent or unreadable; callers treat nil as empty boards.
	LoadMarketData(ctx context.Context) (*market.Data, error)
}

// Store combines every persistence capability the application needs.
type Store interface {
	UserStore
	EmissionStore
	MarketStore
}
