package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"news-portal/internal/domain"
)

// PostgresPublisherRepository implements PublisherRepository using PostgreSQL.
type PostgresPublisherRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresPublisherRepository creates a new PostgresPublisherRepository.
func NewPostgresPublisherRepository(pool *pgxpool.Pool) *PostgresPublisherRepository {
	return &PostgresPublisherRepository{pool: pool}
}

// List returns all publishers ordered by name.
func (r *PostgresPublisherRepository) List(ctx context.Context) ([]domain.Publisher, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, name
		FROM publishers
		ORDER BY name, inserted_at
	`)
	if err != nil {
		return nil, fmt.Errorf("query publishers: %w", err)
	}
	defer rows.Close()

	publishers := make([]domain.Publisher, 0)
	for rows.Next() {
		var a domain.Publisher
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, fmt.Errorf("scan publisher: %w", err)
		}
		publishers = append(publishers, a)
	}

	return publishers, rows.Err()
}

// Create inserts an publisher and sets its ID.
func (r *PostgresPublisherRepository) Create(ctx context.Context, publisher *domain.Publisher) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO publishers (name)
		VALUES ($1)
		RETURNING id::text
	`, publisher.Name).Scan(&publisher.ID)
	if err != nil {
		return fmt.Errorf("insert publisher: %w", err)
	}
	return nil
}
