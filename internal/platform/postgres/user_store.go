package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/adboard-api/internal/domain"
	"github.com/phrazzld/adboard-api/internal/service/auth"
	"github.com/phrazzld/adboard-api/internal/store"
)

var userColumns = []string{"id", "username", "password", "registered_at"}

var usersTable = table[domain.User]{
	name:     "users",
	entity:   "user",
	columns:  userColumns,
	scan:     scanUser,
	notFound: store.ErrUserNotFound,
	unique: map[string]error{
		"users_username_key": store.ErrUsernameExists,
	},
}

func scanUser(row rowScanner) (domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Username, &u.HashedPassword, &u.RegisteredAt); err != nil {
		return domain.User{}, err
	}
	u.RegisteredAt = u.RegisteredAt.UTC()
	return u, nil
}

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db     store.DBTX
	hasher auth.PasswordHasher
	logger *slog.Logger
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

// NewPostgresUserStore creates a new PostgreSQL implementation of the UserStore interface.
// Plaintext passwords passed to Create and Update are hashed with hasher.
func NewPostgresUserStore(db store.DBTX, hasher auth.PasswordHasher, logger *slog.Logger) *PostgresUserStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresUserStore{
		db:     db,
		hasher: hasher,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// WithTx returns a new UserStore instance that uses the provided transaction.
func (s *PostgresUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return &PostgresUserStore{db: tx, hasher: s.hasher, logger: s.logger}
}

// GetByID implements store.UserStore.
func (s *PostgresUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return usersTable.getByID(ctx, s.db, id)
}

// GetByUsername implements store.UserStore.
func (s *PostgresUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return usersTable.getOne(ctx, s.db, "username = $1", username)
}

// List implements store.UserStore.
func (s *PostgresUserStore) List(ctx context.Context) ([]domain.User, error) {
	return usersTable.list(ctx, s.db, "")
}

// Create implements store.UserStore.
func (s *PostgresUserStore) Create(ctx context.Context, input domain.NewUserInput) (*domain.User, error) {
	hashed, err := s.hash(input.Password)
	if err != nil {
		return nil, store.NewStoreError("user", "create", err)
	}

	candidate := domain.User{Username: input.Username, HashedPassword: hashed, RegisteredAt: time.Now()}
	if err := candidate.Validate(); err != nil {
		return nil, store.NewStoreError("user", "create", fmt.Errorf("%w: %w", store.ErrInvalidEntity, err))
	}

	values := new(assignments).
		set("username", input.Username).
		set("password", hashed)

	user, err := usersTable.insert(ctx, s.db, values)
	if err != nil {
		s.logger.DebugContext(ctx, "user insert failed",
			slog.String("username", input.Username),
			slog.String("error", err.Error()))
		return nil, err
	}

	s.logger.DebugContext(ctx, "user created", slog.Int64("user_id", user.ID))
	return user, nil
}

// Update implements store.UserStore. Only non-nil patch fields are written.
func (s *PostgresUserStore) Update(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error) {
	set := new(assignments)
	if patch.Username != nil {
		if *patch.Username == "" {
			return nil, store.NewStoreError("user", "update",
				fmt.Errorf("%w: %w", store.ErrInvalidEntity, domain.ErrEmptyUsername))
		}
		set.set("username", *patch.Username)
	}
	if patch.Password != nil {
		hashed, err := s.hash(*patch.Password)
		if err != nil {
			return nil, store.NewStoreError("user", "update", err)
		}
		set.set("password", hashed)
	}

	return usersTable.update(ctx, s.db, id, set)
}

// Delete implements store.UserStore. The user's advertisements are removed
// by the ON DELETE CASCADE foreign key.
func (s *PostgresUserStore) Delete(ctx context.Context, id int64) error {
	if err := usersTable.delete(ctx, s.db, id); err != nil {
		return err
	}
	s.logger.DebugContext(ctx, "user deleted", slog.Int64("user_id", id))
	return nil
}

func (s *PostgresUserStore) hash(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("%w: %w", store.ErrInvalidEntity, domain.ErrEmptyHashedPassword)
	}
	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return hashed, nil
}
