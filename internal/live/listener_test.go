package live_test

import (
	"context"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"news-portal/internal/domain"
	"news-portal/internal/infrastructure/database"
	"news-portal/internal/live"
	"news-portal/internal/repository"
)

func setupPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	_, currentFile, _, _ := runtime.Caller(0)
	migrationsPath := filepath.Join(filepath.Dir(currentFile), "..", "..", "migrations")

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("news_portal_live_test"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgContainer.Terminate(context.Background()) })

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(migrationsPath, connStr))

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func TestListener_RefreshesOnChange(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	pool := setupPostgres(t)
	newsRepo := repository.NewPostgresNewsRepository(pool)
	feed := live.NewFeed(newsRepo)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub := feed.Subscribe(ctx)
	defer sub.Unsubscribe()

	first := <-sub.C()
	require.NoError(t, first.Err)
	assert.Empty(t, first.Items)

	done := make(chan struct{})
	go func() {
		live.NewListener(pool, feed, 100*time.Millisecond).Run(ctx)
		close(done)
	}()

	n := &domain.News{Title: "Breaking", Body: "Story"}
	require.NoError(t, newsRepo.Create(ctx, n))

	waitFor := func(want int) {
		t.Helper()
		deadline := time.After(10 * time.Second)
		for {
			select {
			case snap := <-sub.C():
				require.NoError(t, snap.Err)
				if len(snap.Items) == want {
					return
				}
			case <-deadline:
				t.Fatalf("no snapshot with %d items", want)
			}
		}
	}

	waitFor(1)

	require.NoError(t, newsRepo.Delete(ctx, n.ID))
	waitFor(0)

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("listener did not stop")
	}
}
