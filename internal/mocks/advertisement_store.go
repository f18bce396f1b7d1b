package mocks

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/phrazzld/adboard-api/internal/domain"
	"github.com/phrazzld/adboard-api/internal/store"
)

// MockAdvertisementStore implements store.AdvertisementStore on top of a MemoryDB.
type MockAdvertisementStore struct {
	db *MemoryDB

	GetByIDFn func(ctx context.Context, id int64) (*domain.Advertisement, error)
}

var _ store.AdvertisementStore = (*MockAdvertisementStore)(nil)

// NewMockAdvertisementStore creates an advertisement store backed by db.
func NewMockAdvertisementStore(db *MemoryDB) *MockAdvertisementStore {
	return &MockAdvertisementStore{db: db}
}

// WithTx returns the same store.
func (m *MockAdvertisementStore) WithTx(_ *sql.Tx) store.AdvertisementStore {
	return m
}

func (m *MockAdvertisementStore) GetByID(ctx context.Context, id int64) (*domain.Advertisement, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.db.mu.Lock()
	defer m.db.mu.Unlock()

	ad, ok := m.db.ads[id]
	if !ok {
		return nil, store.ErrAdvertisementNotFound
	}
	return &ad, nil
}

func (m *MockAdvertisementStore) List(_ context.Context) ([]domain.Advertisement, error) {
	return m.filter(func(domain.Advertisement) bool { return true }), nil
}

func (m *MockAdvertisementStore) ListByOwner(_ context.Context, ownerID int64) ([]domain.Advertisement, error) {
	return m.filter(func(ad domain.Advertisement) bool { return ad.UserID == ownerID }), nil
}

func (m *MockAdvertisementStore) Create(_ context.Context, input domain.NewAdvertisementInput) (*domain.Advertisement, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()

	if _, ok := m.db.users[input.OwnerID]; !ok {
		return nil, fmt.Errorf("%w: owner %d does not exist", store.ErrInvalidEntity, input.OwnerID)
	}
	if m.titleTakenLocked(input.Title, 0) {
		return nil, store.ErrTitleExists
	}

	now := m.db.now()
	m.db.nextAd++
	ad := domain.Advertisement{
		ID:        m.db.nextAd,
		UserID:    input.OwnerID,
		Title:     input.Title,
		Text:      input.Text,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := ad.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}
	m.db.ads[ad.ID] = ad
	return &ad, nil
}

// Update applies patch and refreshes UpdatedAt, never moving it before CreatedAt.
func (m *MockAdvertisementStore) Update(_ context.Context, id int64, patch domain.AdvertisementPatch) (*domain.Advertisement, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()

	ad, ok := m.db.ads[id]
	if !ok {
		return nil, store.ErrAdvertisementNotFound
	}
	if patch.Title != nil {
		if m.titleTakenLocked(*patch.Title, id) {
			return nil, store.ErrTitleExists
		}
		ad.Title = *patch.Title
	}
	if patch.Text != nil {
		ad.Text = *patch.Text
	}
	ad.UpdatedAt = m.db.now()
	if ad.UpdatedAt.Before(ad.CreatedAt) {
		ad.UpdatedAt = ad.CreatedAt
	}
	m.db.ads[id] = ad
	return &ad, nil
}

func (m *MockAdvertisementStore) Delete(_ context.Context, id int64) error {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()

	if _, ok := m.db.ads[id]; !ok {
		return store.ErrAdvertisementNotFound
	}
	delete(m.db.ads, id)
	return nil
}

func (m *MockAdvertisementStore) filter(keep func(domain.Advertisement) bool) []domain.Advertisement {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()

	ads := make([]domain.Advertisement, 0)
	for _, ad := range m.db.ads {
		if keep(ad) {
			ads = append(ads, ad)
		}
	}
	sort.Slice(ads, func(i, j int) bool { return ads[i].ID < ads[j].ID })
	return ads
}

func (m *MockAdvertisementStore) titleTakenLocked(title string, except int64) bool {
	for id, ad := range m.db.ads {
		if id != except && ad.Title == title {
			return true
		}
	}
	return false
}
