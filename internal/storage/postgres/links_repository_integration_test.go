//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/IgorGrieder/shortlink/internal/infrastructure/db"
	"github.com/IgorGrieder/shortlink/internal/processing/links"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	testpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupTestDatabase(t *testing.T) (*db.Postgres, func()) {
	ctx := context.Background()

	pgContainer, err := testpostgres.Run(ctx,
		"postgres:16-alpine",
		testpostgres.WithDatabase("testdb"),
		testpostgres.WithUsername("testuser"),
		testpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	conn, err := db.ConnectPostgres(ctx, connStr)
	require.NoError(t, err)

	cleanup := func() {
		conn.Close()
		_ = pgContainer.Terminate(ctx)
	}
	return conn, cleanup
}

func TestLinksRepository_Integration(t *testing.T) {
	conn, cleanup := setupTestDatabase(t)
	defer cleanup()

	repo, err := NewLinksRepository(conn)
	require.NoError(t, err)

	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	link := &links.ShortLink{Alias: "PGLIVE23", URL: "https://example.com/", CreatedAt: now, Expires: now.Add(time.Hour)}
	require.NoError(t, repo.InsertIfAbsent(ctx, link))
	require.NoError(t, repo.InsertIfAbsent(ctx, &links.ShortLink{Alias: "PGLIVE23", URL: "https://other.example/", CreatedAt: now, Expires: now.Add(time.Hour)}))

	got, err := repo.FindLive(ctx, "PGLIVE23", now)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/", got.URL)

	_, err = repo.FindLive(ctx, "PGLIVE23", now.Add(2*time.Hour))
	assert.ErrorIs(t, err, links.ErrNotFound)

	exists, err := repo.Exists(ctx, "PGLIVE23")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists(ctx, "NEVER234")
	require.NoError(t, err)
	assert.False(t, exists)
}
