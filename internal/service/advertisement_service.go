package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/adboard-api/internal/domain"
	"github.com/phrazzld/adboard-api/internal/store"
)

// AdvertisementService manages advertisements.
type AdvertisementService interface {
	List(ctx context.Context) ([]domain.Advertisement, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Advertisement, error)
	Get(ctx context.Context, id int64) (*domain.Advertisement, error)
	// Create stores an advertisement owned by ownerID, ignoring any owner set on input.
	Create(ctx context.Context, ownerID int64, input domain.NewAdvertisementInput) (*domain.Advertisement, error)
	Update(ctx context.Context, id int64, patch domain.AdvertisementPatch) (*domain.Advertisement, error)
	Delete(ctx context.Context, id int64) error
}

type advertisementService struct {
	ads    store.AdvertisementStore
	db     *sql.DB
	logger *slog.Logger
}

// NewAdvertisementService creates an AdvertisementService. db may be nil.
func NewAdvertisementService(ads store.AdvertisementStore, db *sql.DB, logger *slog.Logger) AdvertisementService {
	if logger == nil {
		logger = slog.Default()
	}
	return &advertisementService{
		ads:    ads,
		db:     db,
		logger: logger.With("component", "advertisement_service"),
	}
}

func (s *advertisementService) List(ctx context.Context) ([]domain.Advertisement, error) {
	ads, err := s.ads.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list advertisements", "error", err)
		return nil, fmt.Errorf("failed to list advertisements: %w", err)
	}
	return ads, nil
}

func (s *advertisementService) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Advertisement, error) {
	ads, err := s.ads.ListByOwner(ctx, ownerID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list advertisements", "error", err, "owner_id", ownerID)
		return nil, fmt.Errorf("failed to list advertisements: %w", err)
	}
	return ads, nil
}

func (s *advertisementService) Get(ctx context.Context, id int64) (*domain.Advertisement, error) {
	ad, err := s.ads.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve advertisement: %w", err)
	}
	return ad, nil
}

func (s *advertisementService) Create(
	ctx context.Context,
	ownerID int64,
	input domain.NewAdvertisementInput,
) (*domain.Advertisement, error) {
	input.OwnerID = ownerID
	ad, err := s.ads.Create(ctx, input)
	if err != nil {
		if !store.IsDuplicateError(err) {
			s.logger.ErrorContext(ctx, "failed to create advertisement", "error", err, "owner_id", ownerID)
		}
		return nil, fmt.Errorf("failed to create advertisement: %w", err)
	}
	s.logger.InfoContext(ctx, "advertisement created", "advertisement_id", ad.ID, "owner_id", ownerID)
	return ad, nil
}

func (s *advertisementService) Update(
	ctx context.Context,
	id int64,
	patch domain.AdvertisementPatch,
) (*domain.Advertisement, error) {
	var updated *domain.Advertisement
	err := inTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		ads := s.ads
		if tx != nil {
			ads = ads.WithTx(tx)
		}
		ad, err := ads.Update(ctx, id, patch)
		if err != nil {
			return err
		}
		if err := ad.Validate(); err != nil {
			return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
		}
		updated = ad
		return nil
	})
	if err != nil {
		if !store.IsNotFoundError(err) && !store.IsDuplicateError(err) {
			s.logger.ErrorContext(ctx, "failed to update advertisement", "error", err, "advertisement_id", id)
		}
		return nil, fmt.Errorf("failed to update advertisement: %w", err)
	}
	return updated, nil
}

func (s *advertisementService) Delete(ctx context.Context, id int64) error {
	if err := s.ads.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete advertisement: %w", err)
	}
	s.logger.InfoContext(ctx, "advertisement deleted", "advertisement_id", id)
	return nil
}
