package mocks

import (
	"sync"
	"time"

	"github.com/phrazzld/adboard-api/internal/domain"
)

// MemoryDB is the shared state behind the in-memory stores. Deleting a user
// removes their advertisements, mirroring ON DELETE CASCADE.
type MemoryDB struct {
	mu       sync.Mutex
	users    map[int64]domain.User
	ads      map[int64]domain.Advertisement
	nextUser int64
	nextAd   int64

	// Now supplies timestamps; defaults to time.Now.
	Now func() time.Time
}

// NewMemoryDB creates an empty in-memory database.
func NewMemoryDB() *MemoryDB {
	return &MemoryDB{
		users: make(map[int64]domain.User),
		ads:   make(map[int64]domain.Advertisement),
		Now:   time.Now,
	}
}

func (db *MemoryDB) now() time.Time {
	return db.Now().UTC()
}

// AdvertisementCount returns the number of stored advertisements.
func (db *MemoryDB) AdvertisementCount() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return len(db.ads)
}
