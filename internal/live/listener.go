package live

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"news-portal/internal/logger"
)

// ChangeChannel is the Postgres notification channel raised by the news trigger.
const ChangeChannel = "news_changed"

// Refresher reloads and broadcasts the collection.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Listener turns Postgres notifications into feed refreshes.
type Listener struct {
	pool           *pgxpool.Pool
	feed           Refresher
	reconnectDelay time.Duration
}

// NewListener creates a Listener.
func NewListener(pool *pgxpool.Pool, feed Refresher, reconnectDelay time.Duration) *Listener {
	return &Listener{pool: pool, feed: feed, reconnectDelay: reconnectDelay}
}

// Run listens until ctx is cancelled, reconnecting after failures.
func (l *Listener) Run(ctx context.Context) {
	for {
		err := l.listen(ctx)
		if ctx.Err() != nil {
			return
		}
		logger.Warn("Live listener disconnected",
			slog.String("error", err.Error()),
			slog.Duration("retry_in", l.reconnectDelay))

		select {
		case <-ctx.Done():
			return
		case <-time.After(l.reconnectDelay):
		}
	}
}

func (l *Listener) listen(ctx context.Context) error {
	pooled, err := l.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	// The connection carries LISTEN state, so it never goes back to the pool.
	conn := pooled.Hijack()
	defer conn.Close(context.Background())

	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{ChangeChannel}.Sanitize()); err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	logger.Info("Live listener started", slog.String("channel", ChangeChannel))

	// Changes made while disconnected were not notified.
	l.refresh(ctx)

	for {
		n, err := conn.WaitForNotification(ctx)
		if err != nil {
			return fmt.Errorf("wait for notification: %w", err)
		}
		logger.Debug("News changed", slog.String("news_id", n.Payload))
		l.refresh(ctx)
	}
}

func (l *Listener) refresh(ctx context.Context) {
	if err := l.feed.Refresh(ctx); err != nil && ctx.Err() == nil {
		logger.Error("Live feed refresh failed", slog.String("error", err.Error()))
	}
}
