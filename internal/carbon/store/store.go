package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/carbon/internal/carbon/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// Unique-index violations on users. Both match ErrAlreadyExists.
	ErrEmailTaken    = fmt.Errorf("%w: email", ErrAlreadyExists)
	ErrUsernameTaken = fmt.Errorf("%w: username", ErrAlreadyExists)
)

// Store is the root data access interface. Concrete drivers (sqlite,
// postgres, mongo) implement this and expose sub-repositories per aggregate.
type Store interface {
	Users() Users
	Vehicles() Vehicles

	// ApplyMigrations brings the schema (or, for document stores, the
	// indexes) up to date. It must run before the store serves traffic.
	ApplyMigrations(ctx context.Context) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Users interface {
	// CreateUser inserts a new user (id is provided by app via ULID). The
	// store's unique indexes decide races: the loser gets ErrEmailTaken or
	// ErrUsernameTaken.
	CreateUser(ctx context.Context, u domain.User) error

	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during login.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// UpdateQuizAnswers replaces the quiz answers wholesale and bumps
	// updated_at. Returns ErrNotFound when no user has userID.
	UpdateQuizAnswers(ctx context.Context, userID string, answers domain.QuizAnswers) error

	// UpdatePasswordHash swaps in a re-hashed digest after a successful
	// login. Returns ErrNotFound when no user has userID.
	UpdatePasswordHash(ctx context.Context, userID, passwordHash string) error
}

type Vehicles interface {
	// GetVehicleByType is an exact, case-sensitive lookup.
	GetVehicleByType(ctx context.Context, vehicleType string) (domain.Vehicle, error)

	// ListVehicles returns every vehicle ordered by type.
	ListVehicles(ctx context.Context) ([]domain.Vehicle, error)

	// UpsertVehicle inserts or overwrites the factor for v.Type. Only the
	// seed command calls this.
	UpsertVehicle(ctx context.Context, v domain.Vehicle) error
}
