package repository

import (
	"context"

	"news-portal/internal/domain"
)

// AuthorRepository defines methods for author data access.
type AuthorRepository interface {
	List(ctx context.Context) ([]domain.Author, error)
	// Create inserts the author and sets its store-assigned ID.
	Create(ctx context.Context, author *domain.Author) error
}

// PublisherRepository defines methods for publisher data access.
type PublisherRepository interface {
	List(ctx context.Context) ([]domain.Publisher, error)
	// Create inserts the publisher and sets its store-assigned ID.
	Create(ctx context.Context, publisher *domain.Publisher) error
}

// NewsRepository defines methods for news data access.
// Get, Update and Delete return domain.ErrNotFound for unknown ids.
type NewsRepository interface {
	List(ctx context.Context) ([]domain.News, error)
	Get(ctx context.Context, id string) (*domain.News, error)
	// Create inserts the article and sets its store-assigned ID.
	Create(ctx context.Context, news *domain.News) error
	// Update replaces title, body, image and references. CreatedAt is left untouched.
	Update(ctx context.Context, news *domain.News) error
	Delete(ctx context.Context, id string) error
}
