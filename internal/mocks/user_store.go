package mocks

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/phrazzld/adboard-api/internal/domain"
	"github.com/phrazzld/adboard-api/internal/service/auth"
	"github.com/phrazzld/adboard-api/internal/store"
)

// MockUserStore implements store.UserStore on top of a MemoryDB.
type MockUserStore struct {
	db     *MemoryDB
	hasher auth.PasswordHasher

	// Function fields override the default behavior when set.
	GetByIDFn func(ctx context.Context, id int64) (*domain.User, error)
	CreateFn  func(ctx context.Context, input domain.NewUserInput) (*domain.User, error)
	DeleteFn  func(ctx context.Context, id int64) error
}

var _ store.UserStore = (*MockUserStore)(nil)

// NewMockUserStore creates a user store backed by db.
func NewMockUserStore(db *MemoryDB, hasher auth.PasswordHasher) *MockUserStore {
	return &MockUserStore{db: db, hasher: hasher}
}

// WithTx returns the same store; MemoryDB has no transactions.
func (m *MockUserStore) WithTx(_ *sql.Tx) store.UserStore {
	return m
}

// GetByID implements store.UserStore.
func (m *MockUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.db.mu.Lock()
	defer m.db.mu.Unlock()

	user, ok := m.db.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return &user, nil
}

// GetByUsername implements store.UserStore.
func (m *MockUserStore) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()

	for _, user := range m.db.users {
		if user.Username == username {
			return &user, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// List implements store.UserStore.
func (m *MockUserStore) List(_ context.Context) ([]domain.User, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()

	users := make([]domain.User, 0, len(m.db.users))
	for _, user := range m.db.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

// Create implements store.UserStore.
func (m *MockUserStore) Create(ctx context.Context, input domain.NewUserInput) (*domain.User, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, input)
	}

	hashed, err := m.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	m.db.mu.Lock()
	defer m.db.mu.Unlock()

	if m.usernameTakenLocked(input.Username, 0) {
		return nil, store.ErrUsernameExists
	}

	m.db.nextUser++
	user := domain.User{
		ID:             m.db.nextUser,
		Username:       input.Username,
		HashedPassword: hashed,
		RegisteredAt:   m.db.now(),
	}
	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}
	m.db.users[user.ID] = user
	return &user, nil
}

// Update implements store.UserStore.
func (m *MockUserStore) Update(_ context.Context, id int64, patch domain.UserPatch) (*domain.User, error) {
	var hashed string
	if patch.Password != nil {
		h, err := m.hasher.Hash(*patch.Password)
		if err != nil {
			return nil, err
		}
		hashed = h
	}

	m.db.mu.Lock()
	defer m.db.mu.Unlock()

	user, ok := m.db.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	if patch.Username != nil {
		if m.usernameTakenLocked(*patch.Username, id) {
			return nil, store.ErrUsernameExists
		}
		user.Username = *patch.Username
	}
	if patch.Password != nil {
		user.HashedPassword = hashed
	}
	m.db.users[id] = user
	return &user, nil
}

// Delete implements store.UserStore and cascades to advertisements.
func (m *MockUserStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	m.db.mu.Lock()
	defer m.db.mu.Unlock()

	if _, ok := m.db.users[id]; !ok {
		return store.ErrUserNotFound
	}
	delete(m.db.users, id)
	for adID, ad := range m.db.ads {
		if ad.UserID == id {
			delete(m.db.ads, adID)
		}
	}
	return nil
}

func (m *MockUserStore) usernameTakenLocked(username string, except int64) bool {
	for id, user := range m.db.users {
		if id != except && user.Username == username {
			return true
		}
	}
	return false
}
