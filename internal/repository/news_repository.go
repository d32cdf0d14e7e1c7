package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"news-portal/internal/domain"
)

const newsColumns = `id::text, title, body, image, created_at, author_id::text, publisher_id::text`

// PostgresNewsRepository implements NewsRepository using PostgreSQL.
type PostgresNewsRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresNewsRepository creates a new PostgresNewsRepository.
func NewPostgresNewsRepository(pool *pgxpool.Pool) *PostgresNewsRepository {
	return &PostgresNewsRepository{pool: pool}
}

// List returns all articles, newest first. Articles without created_at come last.
func (r *PostgresNewsRepository) List(ctx context.Context) ([]domain.News, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+newsColumns+`
		FROM news
		ORDER BY created_at DESC NULLS LAST, inserted_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query news: %w", err)
	}
	defer rows.Close()

	items := make([]domain.News, 0)
	for rows.Next() {
		n, err := scanNews(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *n)
	}

	return items, rows.Err()
}

// Get retrieves an article by ID.
func (r *PostgresNewsRepository) Get(ctx context.Context, id string) (*domain.News, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+newsColumns+`
		FROM news
		WHERE id = $1
	`, id)

	n, err := scanNews(row)
	if errors.Is(err, pgx.ErrNoRows) || isInvalidID(err) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return n, nil
}

// Create inserts an article and sets its ID.
func (r *PostgresNewsRepository) Create(ctx context.Context, n *domain.News) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO news (title, body, image, created_at, author_id, publisher_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id::text
	`, n.Title, n.Body, n.Image, n.CreatedAt, n.AuthorID, n.PublisherID).Scan(&n.ID)
	if err != nil {
		return fmt.Errorf("insert news: %w", err)
	}
	return nil
}

// Update replaces the mutable fields of an article. created_at is never written.
func (r *PostgresNewsRepository) Update(ctx context.Context, n *domain.News) error {
	err := r.pool.QueryRow(ctx, `
		UPDATE news
		SET title = $2, body = $3, image = $4, author_id = $5, publisher_id = $6
		WHERE id = $1
		RETURNING created_at
	`, n.ID, n.Title, n.Body, n.Image, n.AuthorID, n.PublisherID).Scan(&n.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) || isInvalidID(err) {
		return domain.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("update news: %w", err)
	}
	return nil
}

// Delete removes an article by ID.
func (r *PostgresNewsRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM news WHERE id = $1`, id)
	if isInvalidID(err) {
		return domain.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("delete news: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanNews(row pgx.Row) (*domain.News, error) {
	var n domain.News
	if err := row.Scan(&n.ID, &n.Title, &n.Body, &n.Image, &n.CreatedAt, &n.AuthorID, &n.PublisherID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidID(err) {
			return nil, err
		}
		return nil, fmt.Errorf("scan news: %w", err)
	}
	return &n, nil
}
