package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/adboard-api/internal/domain"
	"github.com/phrazzld/adboard-api/internal/store"
)

var advertisementsTable = table[domain.Advertisement]{
	name:     "advertisements",
	entity:   "advertisement",
	columns:  []string{"id", "owner_id", "title", "text", "created_at", "updated_at"},
	scan:     scanAdvertisement,
	notFound: store.ErrAdvertisementNotFound,
	unique: map[string]error{
		"advertisements_title_key": store.ErrTitleExists,
	},
}

func scanAdvertisement(row rowScanner) (domain.Advertisement, error) {
	var a domain.Advertisement
	if err := row.Scan(&a.ID, &a.UserID, &a.Title, &a.Text, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return domain.Advertisement{}, err
	}
	a.CreatedAt = a.CreatedAt.UTC()
	a.UpdatedAt = a.UpdatedAt.UTC()
	return a, nil
}

// refreshUpdatedAt keeps updated_at monotonic relative to created_at even if
// the database clock moves backwards.
const refreshUpdatedAt = "updated_at = GREATEST(NOW(), created_at)"

// PostgresAdvertisementStore implements store.AdvertisementStore.
type PostgresAdvertisementStore struct {
	db     store.DBTX
	logger *slog.Logger
}

var _ store.AdvertisementStore = (*PostgresAdvertisementStore)(nil)

// NewPostgresAdvertisementStore creates a new PostgreSQL advertisement store.
func NewPostgresAdvertisementStore(db store.DBTX, logger *slog.Logger) *PostgresAdvertisementStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresAdvertisementStore{
		db:     db,
		logger: logger.With(slog.String("component", "advertisement_store")),
	}
}

// WithTx returns a store bound to tx.
func (s *PostgresAdvertisementStore) WithTx(tx *sql.Tx) store.AdvertisementStore {
	return &PostgresAdvertisementStore{db: tx, logger: s.logger}
}

func (s *PostgresAdvertisementStore) GetByID(ctx context.Context, id int64) (*domain.Advertisement, error) {
	return advertisementsTable.getByID(ctx, s.db, id)
}

func (s *PostgresAdvertisementStore) List(ctx context.Context) ([]domain.Advertisement, error) {
	return advertisementsTable.list(ctx, s.db, "")
}

func (s *PostgresAdvertisementStore) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Advertisement, error) {
	return advertisementsTable.list(ctx, s.db, "owner_id = $1", ownerID)
}

// Create inserts the advertisement. A missing owner surfaces as
// store.ErrInvalidEntity through the foreign key.
func (s *PostgresAdvertisementStore) Create(ctx context.Context, input domain.NewAdvertisementInput) (*domain.Advertisement, error) {
	candidate := domain.Advertisement{UserID: input.OwnerID, Title: input.Title, Text: input.Text}
	if err := candidate.Validate(); err != nil {
		return nil, store.NewStoreError("advertisement", "create", fmt.Errorf("%w: %w", store.ErrInvalidEntity, err))
	}

	values := new(assignments).
		set("owner_id", input.OwnerID).
		set("title", input.Title).
		set("text", input.Text)

	ad, err := advertisementsTable.insert(ctx, s.db, values)
	if err != nil {
		return nil, err
	}
	s.logger.DebugContext(ctx, "advertisement created",
		slog.Int64("advertisement_id", ad.ID),
		slog.Int64("owner_id", ad.UserID))
	return ad, nil
}

// Update writes the non-nil patch fields and always refreshes updated_at.
func (s *PostgresAdvertisementStore) Update(ctx context.Context, id int64, patch domain.AdvertisementPatch) (*domain.Advertisement, error) {
	set := new(assignments)
	if patch.Title != nil {
		if *patch.Title == "" {
			return nil, store.NewStoreError("advertisement", "update",
				fmt.Errorf("%w: %w", store.ErrInvalidEntity, domain.ErrEmptyTitle))
		}
		set.set("title", *patch.Title)
	}
	if patch.Text != nil {
		if *patch.Text == "" {
			return nil, store.NewStoreError("advertisement", "update",
				fmt.Errorf("%w: %w", store.ErrInvalidEntity, domain.ErrEmptyText))
		}
		set.set("text", *patch.Text)
	}
	set.expr(refreshUpdatedAt)

	return advertisementsTable.update(ctx, s.db, id, set)
}

func (s *PostgresAdvertisementStore) Delete(ctx context.Context, id int64) error {
	return advertisementsTable.delete(ctx, s.db, id)
}
