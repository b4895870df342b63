//go:build integration

package repository

import (
	"context"
	"sync"
	"testing"

	"restaurant-finder-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jackc/pgx/v5/pgxpool"
)

func setupTestDatabase(t *testing.T) *pgxpool.Pool {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "testdb",
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}

	postgresC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		postgresC.Terminate(ctx)
	})

	host, err := postgresC.Host(ctx)
	require.NoError(t, err)

	port, err := postgresC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connString := "postgres://testuser:testpass@" + host + ":" + port.Port() + "/testdb?sslmode=disable"

	pool, err := pgxpool.New(ctx, connString)
	require.NoError(t, err)

	t.Cleanup(func() {
		pool.Close()
	})

	return pool
}

func TestPostgresLocationStore(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	pool := setupTestDatabase(t)
	store := NewPostgresLocationStore(pool)
	ctx := context.Background()

	require.NoError(t, store.EnsureSchema(ctx))
	require.NoError(t, store.EnsureSchema(ctx), "schema creation is idempotent")

	t.Run("unknown key", func(t *testing.T) {
		_, err := store.GetLocation(ctx, "missing")
		assert.ErrorIs(t, err, models.ErrLocationNotFound)
	})

	t.Run("latest write wins", func(t *testing.T) {
		require.NoError(t, store.SetLocation(ctx, "session-a", models.Location{Latitude: 43.24, Longitude: -79.89}))
		require.NoError(t, store.SetLocation(ctx, "session-a", models.Location{Latitude: 35.681236, Longitude: 139.767125}))

		loc, err := store.GetLocation(ctx, "session-a")
		require.NoError(t, err)
		assert.Equal(t, models.Location{Latitude: 35.681236, Longitude: 139.767125}, loc)
	})

	t.Run("concurrent writers", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				assert.NoError(t, store.SetLocation(ctx, "session-b", models.Location{Latitude: float64(i), Longitude: float64(i)}))
			}(i)
		}
		wg.Wait()

		loc, err := store.GetLocation(ctx, "session-b")
		require.NoError(t, err)
		assert.Equal(t, loc.Latitude, loc.Longitude)
	})

	t.Run("batch upsert", func(t *testing.T) {
		err := store.UpsertBatch(ctx, []SessionLocation{
			{Key: "batch-1", Location: models.Location{Latitude: 1, Longitude: 2}},
			{Key: "batch-2", Location: models.Location{Latitude: 3, Longitude: 4}},
		})
		require.NoError(t, err)

		loc, err := store.GetLocation(ctx, "batch-2")
		require.NoError(t, err)
		assert.Equal(t, models.Location{Latitude: 3, Longitude: 4}, loc)

		count, err := store.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 4, count)
	})
}
