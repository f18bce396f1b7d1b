package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/adboard-api/internal/domain"
)

// Repository is the CRUD contract shared by every entity. T is the entity,
// I the creation input and P the partial-update patch.
type Repository[T any, I any, P any] interface {
	// GetByID returns the entity with the given id.
	// Returns an error wrapping ErrNotFound if it does not exist.
	GetByID(ctx context.Context, id int64) (*T, error)

	// List returns every entity ordered by id.
	List(ctx context.Context) ([]T, error)

	// Create inserts a new entity and returns it with server-assigned fields populated.
	// Returns an error wrapping ErrDuplicate if a unique constraint is violated.
	Create(ctx context.Context, input I) (*T, error)

	// Update applies only the fields set in patch and returns the updated entity.
	// Returns an error wrapping ErrNotFound or ErrDuplicate.
	Update(ctx context.Context, id int64, patch P) (*T, error)

	// Delete removes the entity. Dependent rows are removed by the database's
	// foreign-key cascade. Returns an error wrapping ErrNotFound if nothing was deleted.
	Delete(ctx context.Context, id int64) error
}

// UserStore defines the interface for user data persistence.
// Passwords in NewUserInput and UserPatch are plaintext; the store hashes them
// before they reach the database.
type UserStore interface {
	Repository[domain.User, domain.NewUserInput, domain.UserPatch]

	// GetByUsername retrieves a user by username.
	// Returns ErrUserNotFound if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// WithTx returns a UserStore bound to the given transaction.
	WithTx(tx *sql.Tx) UserStore
}

// AdvertisementStore defines the interface for advertisement data persistence.
type AdvertisementStore interface {
	Repository[domain.Advertisement, domain.NewAdvertisementInput, domain.AdvertisementPatch]

	// ListByOwner returns the advertisements owned by the given user, ordered by id.
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Advertisement, error)

	// WithTx returns an AdvertisementStore bound to the given transaction.
	WithTx(tx *sql.Tx) AdvertisementStore
}
