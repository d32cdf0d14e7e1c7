package service

import (
	"context"
	"fmt"

	"news-portal/internal/domain"
	"news-portal/internal/repository"
)

// UnknownAuthor is shown for articles whose author cannot be resolved.
const UnknownAuthor = "Unknown"

// Directory holds the author and publisher lists used to resolve names.
type Directory struct {
	Authors    []domain.Author    `json:"authors"`
	Publishers []domain.Publisher `json:"publishers"`
}

// AuthorName resolves an author id, or returns UnknownAuthor.
func (d *Directory) AuthorName(id string) string {
	if id == "" {
		return UnknownAuthor
	}
	a, ok := domain.FindAuthor(d.Authors, id)
	if !ok || a.Name == "" {
		return UnknownAuthor
	}
	return a.Name
}

// PublisherName resolves a publisher id, or returns an empty string.
func (d *Directory) PublisherName(id string) string {
	p, _ := domain.FindPublisher(d.Publishers, id)
	return p.Name
}

// DirectoryService loads authors and publishers.
type DirectoryService struct {
	authors    repository.AuthorRepository
	publishers repository.PublisherRepository
}

// NewDirectoryService creates a new DirectoryService.
func NewDirectoryService(authorRepo repository.AuthorRepository, publisherRepo repository.PublisherRepository) *DirectoryService {
	return &DirectoryService{authors: authorRepo, publishers: publisherRepo}
}

// Load fetches both lists.
func (s *DirectoryService) Load(ctx context.Context) (*Directory, error) {
	authors, err := s.authors.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	publishers, err := s.publishers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list publishers: %w", err)
	}
	return &Directory{Authors: authors, Publishers: publishers}, nil
}
