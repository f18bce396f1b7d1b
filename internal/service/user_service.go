package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/adboard-api/internal/domain"
	"github.com/phrazzld/adboard-api/internal/service/auth"
	"github.com/phrazzld/adboard-api/internal/store"
)

// UserService provides user registration, profile management and credential checks.
type UserService interface {
	// List returns every user ordered by id.
	List(ctx context.Context) ([]domain.User, error)

	// Get retrieves a user by id.
	Get(ctx context.Context, id int64) (*domain.User, error)

	// Register creates a user from a plaintext password.
	Register(ctx context.Context, input domain.NewUserInput) (*domain.User, error)

	// Update applies a partial update to the user.
	Update(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error)

	// Delete removes the user together with their advertisements.
	Delete(ctx context.Context, id int64) error

	// Authenticate returns the user matching the credentials.
	// Unknown usernames yield store.ErrUserNotFound, bad passwords ErrInvalidCredentials.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
}

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	userStore store.UserStore
	passwords auth.PasswordHasher
	db        *sql.DB
	logger    *slog.Logger
}

// NewUserService creates a new UserService. db may be nil when the store does
// not need transactions.
func NewUserService(
	userStore store.UserStore,
	passwords auth.PasswordHasher,
	db *sql.DB,
	logger *slog.Logger,
) UserService {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserServiceImpl{
		userStore: userStore,
		passwords: passwords,
		db:        db,
		logger:    logger.With("component", "user_service"),
	}
}

// storeFor returns the store bound to tx, or the base store when tx is nil.
func (s *UserServiceImpl) storeFor(tx *sql.Tx) store.UserStore {
	if tx == nil {
		return s.userStore
	}
	return s.userStore.WithTx(tx)
}

// List returns every user.
func (s *UserServiceImpl) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.userStore.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list users", "error", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// Get retrieves a user by their ID
func (s *UserServiceImpl) Get(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		if !store.IsNotFoundError(err) {
			s.logger.ErrorContext(ctx, "failed to retrieve user", "error", err, "user_id", id)
		}
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}
	return user, nil
}

// Register creates a new user
func (s *UserServiceImpl) Register(ctx context.Context, input domain.NewUserInput) (*domain.User, error) {
	user, err := s.userStore.Create(ctx, input)
	if err != nil {
		if errors.Is(err, store.ErrUsernameExists) {
			s.logger.DebugContext(ctx, "attempted to register existing username",
				"username", input.Username)
		} else {
			s.logger.ErrorContext(ctx, "failed to save user to database",
				"error", err,
				"username", input.Username)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.InfoContext(ctx, "user registered", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// Update applies patch to the user. The existence check and the write share a transaction.
func (s *UserServiceImpl) Update(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error) {
	var updated *domain.User
	err := inTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.storeFor(tx)

		if _, err := txStore.GetByID(ctx, id); err != nil {
			return err
		}

		user, err := txStore.Update(ctx, id, patch)
		if err != nil {
			return err
		}
		updated = user
		return nil
	})
	if err != nil {
		if !store.IsNotFoundError(err) && !store.IsDuplicateError(err) {
			s.logger.ErrorContext(ctx, "failed to update user", "error", err, "user_id", id)
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	s.logger.InfoContext(ctx, "user updated",
		"user_id", id,
		"username_changed", patch.Username != nil,
		"password_changed", patch.Password != nil)
	return updated, nil
}

// Delete removes the user; the advertisements cascade.
func (s *UserServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.userStore.Delete(ctx, id); err != nil {
		if !store.IsNotFoundError(err) {
			s.logger.ErrorContext(ctx, "failed to delete user", "error", err, "user_id", id)
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	s.logger.InfoContext(ctx, "user deleted", "user_id", id)
	return nil
}

// Authenticate verifies username and password.
func (s *UserServiceImpl) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userStore.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate: %w", err)
	}

	if err := s.passwords.Compare(user.HashedPassword, password); err != nil {
		s.logger.DebugContext(ctx, "password mismatch", "user_id", user.ID)
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
