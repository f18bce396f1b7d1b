package mocks

import (
	"context"
	"database/sql"

	"github.com/phrazzld/adboard-api/internal/domain"
	"github.com/phrazzld/adboard-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// TestifyMockAdvertisementStore is a testify/mock stub of store.AdvertisementStore.
type TestifyMockAdvertisementStore struct {
	mock.Mock
}

var _ store.AdvertisementStore = (*TestifyMockAdvertisementStore)(nil)

func (m *TestifyMockAdvertisementStore) GetByID(ctx context.Context, id int64) (*domain.Advertisement, error) {
	args := m.Called(ctx, id)
	if ad, ok := args.Get(0).(*domain.Advertisement); ok {
		return ad, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TestifyMockAdvertisementStore) List(ctx context.Context) ([]domain.Advertisement, error) {
	args := m.Called(ctx)
	ads, _ := args.Get(0).([]domain.Advertisement)
	return ads, args.Error(1)
}

func (m *TestifyMockAdvertisementStore) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Advertisement, error) {
	args := m.Called(ctx, ownerID)
	ads, _ := args.Get(0).([]domain.Advertisement)
	return ads, args.Error(1)
}

func (m *TestifyMockAdvertisementStore) Create(
	ctx context.Context,
	input domain.NewAdvertisementInput,
) (*domain.Advertisement, error) {
	args := m.Called(ctx, input)
	if ad, ok := args.Get(0).(*domain.Advertisement); ok {
		return ad, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TestifyMockAdvertisementStore) Update(
	ctx context.Context,
	id int64,
	patch domain.AdvertisementPatch,
) (*domain.Advertisement, error) {
	args := m.Called(ctx, id, patch)
	if ad, ok := args.Get(0).(*domain.Advertisement); ok {
		return ad, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TestifyMockAdvertisementStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *TestifyMockAdvertisementStore) WithTx(tx *sql.Tx) store.AdvertisementStore {
	args := m.Called(tx)
	if ret, ok := args.Get(0).(store.AdvertisementStore); ok {
		return ret
	}
	return m
}
