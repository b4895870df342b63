package repository

import (
	"context"
	"errors"
	"fmt"

	"restaurant-finder-api/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mmcloughlin/geohash"
)

// Schema creates the session_locations table used by PostgresLocationStore.
const Schema = `
	CREATE TABLE IF NOT EXISTS session_locations (
		session_key TEXT PRIMARY KEY,
		latitude DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL,
		geohash TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE INDEX IF NOT EXISTS session_locations_geohash_idx ON session_locations (geohash);
`

const upsertLocationSQL = `
	INSERT INTO session_locations (session_key, latitude, longitude, geohash, updated_at)
	VALUES ($1, $2, $3, $4, now())
	ON CONFLICT (session_key) DO UPDATE SET
		latitude = EXCLUDED.latitude,
		longitude = EXCLUDED.longitude,
		geohash = EXCLUDED.geohash,
		updated_at = EXCLUDED.updated_at
`

// PostgresLocationStore implements the location store on PostgreSQL
type PostgresLocationStore struct {
	db *pgxpool.Pool
}

// NewPostgresLocationStore creates a new PostgreSQL location store
func NewPostgresLocationStore(db *pgxpool.Pool) *PostgresLocationStore {
	return &PostgresLocationStore{db: db}
}

// EnsureSchema creates the backing table if it does not exist
func (s *PostgresLocationStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("repository: failed to create schema: %w", err)
	}
	return nil
}

// SetLocation upserts the location for key. The row lock taken by the upsert makes the
// latest write win for concurrent writers of the same key.
func (s *PostgresLocationStore) SetLocation(ctx context.Context, key string, loc models.Location) error {
	hash := geohash.Encode(loc.Latitude, loc.Longitude)
	if _, err := s.db.Exec(ctx, upsertLocationSQL, key, loc.Latitude, loc.Longitude, hash); err != nil {
		return fmt.Errorf("repository: failed to store location: %w", err)
	}
	return nil
}

// GetLocation returns the location stored for key
func (s *PostgresLocationStore) GetLocation(ctx context.Context, key string) (models.Location, error) {
	sql := `
		SELECT latitude, longitude
		FROM session_locations
		WHERE session_key = $1
	`

	var loc models.Location
	err := s.db.QueryRow(ctx, sql, key).Scan(&loc.Latitude, &loc.Longitude)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Location{}, models.ErrLocationNotFound
		}
		return models.Location{}, fmt.Errorf("repository: failed to load location: %w", err)
	}

	return loc, nil
}

// SessionLocation is one row of the session_locations table.
type SessionLocation struct {
	Key      string
	Location models.Location
}

// UpsertBatch writes many session locations in a single round trip
func (s *PostgresLocationStore) UpsertBatch(ctx context.Context, rows []SessionLocation) error {
	batch := &pgx.Batch{}
	for _, r := range rows {
		batch.Queue(upsertLocationSQL, r.Key, r.Location.Latitude, r.Location.Longitude,
			geohash.Encode(r.Location.Latitude, r.Location.Longitude))
	}

	results := s.db.SendBatch(ctx, batch)
	defer results.Close()

	for i := range rows {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("repository: failed to upsert row %d (%s): %w", i, rows[i].Key, err)
		}
	}
	return nil
}

// Count returns the number of stored session locations
func (s *PostgresLocationStore) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRow(ctx, "SELECT COUNT(*) FROM session_locations").Scan(&count); err != nil {
		return 0, fmt.Errorf("repository: failed to count locations: %w", err)
	}
	return count, nil
}
