package repository

import (
	"context"
	"sync"
	"time"

	"restaurant-finder-api/internal/models"

	"github.com/rs/zerolog"
)

type memoryEntry struct {
	loc       models.Location
	updatedAt time.Time
}

// MemoryLocationStore keeps the latest location per session key in process memory.
// Each key is an independent sync.Map entry, so writers for different sessions never contend.
// Entries not reported again within ttl are dropped; a zero ttl keeps them forever.
type MemoryLocationStore struct {
	locations sync.Map // session key -> memoryEntry
	ttl       time.Duration
	now       func() time.Time
}

// NewMemoryLocationStore creates an empty in-memory store
func NewMemoryLocationStore(ttl time.Duration) *MemoryLocationStore {
	return &MemoryLocationStore{ttl: ttl, now: time.Now}
}

// SetLocation stores or overwrites the location for key
func (s *MemoryLocationStore) SetLocation(ctx context.Context, key string, loc models.Location) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.locations.Store(key, memoryEntry{loc: loc, updatedAt: s.now()})
	return nil
}

// GetLocation returns the location stored for key
func (s *MemoryLocationStore) GetLocation(ctx context.Context, key string) (models.Location, error) {
	if err := ctx.Err(); err != nil {
		return models.Location{}, err
	}
	v, ok := s.locations.Load(key)
	if !ok {
		return models.Location{}, models.ErrLocationNotFound
	}
	entry := v.(memoryEntry)
	if s.expired(entry, s.now()) {
		s.locations.CompareAndDelete(key, entry)
		return models.Location{}, models.ErrLocationNotFound
	}
	return entry.loc, nil
}

// Sweep removes every expired entry and returns how many were dropped.
func (s *MemoryLocationStore) Sweep() int {
	now := s.now()
	removed := 0
	s.locations.Range(func(key, value any) bool {
		if s.expired(value.(memoryEntry), now) && s.locations.CompareAndDelete(key, value) {
			removed++
		}
		return true
	})
	return removed
}

// Run sweeps the store every interval until ctx is done. It returns immediately when
// entries never expire.
func (s *MemoryLocationStore) Run(ctx context.Context, interval time.Duration) {
	if s.ttl <= 0 || interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := s.Sweep(); removed > 0 {
				zerolog.Ctx(ctx).Debug().Int("removed", removed).Msg("expired session locations dropped")
			}
		}
	}
}

func (s *MemoryLocationStore) expired(entry memoryEntry, now time.Time) bool {
	return s.ttl > 0 && now.Sub(entry.updatedAt) >= s.ttl
}
