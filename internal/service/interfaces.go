package service

import (
	"context"
	"io"

	"news-portal/internal/domain"
	"news-portal/internal/live"
)

// SubmissionServiceInterface defines the article create/edit workflow.
// Used for dependency injection in handlers.
type SubmissionServiceInterface interface {
	// Submit validates and persists a create or edit submission.
	Submit(ctx context.Context, req SubmitRequest) (*SubmitResult, error)
	// LoadForEdit fills a form from a stored article.
	LoadForEdit(ctx context.Context, id string) (*domain.SubmissionForm, error)
}

// ListingServiceInterface defines the article listing and deletion workflow.
type ListingServiceInterface interface {
	// Watch starts a live view of the listing.
	Watch(ctx context.Context) (*ListingView, error)
	// Snapshot builds the listing once.
	Snapshot(ctx context.Context) *ListingState
	// Article builds the view of a single article.
	Article(ctx context.Context, id string) (*ArticleView, error)
	// Delete removes an article after confirmation.
	Delete(ctx context.Context, id string, confirmed bool) error
	// IsDeleting reports whether a delete for id is in flight.
	IsDeleting(id string) bool
}

// DirectoryServiceInterface lists authors and publishers for form pickers.
type DirectoryServiceInterface interface {
	Load(ctx context.Context) (*Directory, error)
}

// UploadServiceInterface stores images referenced from article bodies.
type UploadServiceInterface interface {
	UploadContentImage(ctx context.Context, filename string, r io.Reader, size int64) (*UploadedImage, error)
}

// Subscriber opens live News subscriptions.
type Subscriber interface {
	Subscribe(ctx context.Context) *live.Subscription
}
