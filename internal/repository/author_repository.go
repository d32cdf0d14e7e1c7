package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"news-portal/internal/domain"
)

// PostgresAuthorRepository implements AuthorRepository using PostgreSQL.
type PostgresAuthorRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresAuthorRepository creates a new PostgresAuthorRepository.
func NewPostgresAuthorRepository(pool *pgxpool.Pool) *PostgresAuthorRepository {
	return &PostgresAuthorRepository{pool: pool}
}

// List returns all authors ordered by name.
func (r *PostgresAuthorRepository) List(ctx context.Context) ([]domain.Author, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, name
		FROM authors
		ORDER BY name, inserted_at
	`)
	if err != nil {
		return nil, fmt.Errorf("query authors: %w", err)
	}
	defer rows.Close()

	authors := make([]domain.Author, 0)
	for rows.Next() {
		var a domain.Author
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, fmt.Errorf("scan author: %w", err)
		}
		authors = append(authors, a)
	}

	return authors, rows.Err()
}

// Create inserts an author and sets its ID.
func (r *PostgresAuthorRepository) Create(ctx context.Context, author *domain.Author) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO authors (name)
		VALUES ($1)
		RETURNING id::text
	`, author.Name).Scan(&author.ID)
	if err != nil {
		return fmt.Errorf("insert author: %w", err)
	}
	return nil
}
