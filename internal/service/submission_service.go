package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"news-portal/internal/domain"
	"news-portal/internal/logger"
	"news-portal/internal/metrics"
	"news-portal/internal/repository"
	"news-portal/internal/storage"
	"news-portal/internal/validator"
)

// ListingPath is where clients go after a successful submission.
const ListingPath = "/articles"

// Stage names the step of a submission that failed.
type Stage string

const (
	StageValidation Stage = "validation"
	StageUpload     Stage = "upload"
	StageAuthor     Stage = "author"
	StagePublisher  Stage = "publisher"
	StageNews       Stage = "news"
)

var stageMessages = map[Stage]string{
	StageUpload:    "Failed to upload image",
	StageAuthor:    "Failed to create author",
	StagePublisher: "Failed to create publisher",
	StageNews:      "Failed to save article",
}

// SubmissionError reports a failed submission. Message is safe to show to users.
type SubmissionError struct {
	Stage   Stage
	Message string
	Err     error
}

func (e *SubmissionError) Error() string {
	return e.Message
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

func newSubmissionError(stage Stage, err error) *SubmissionError {
	cause := "Unknown error"
	if err != nil && err.Error() != "" {
		cause = err.Error()
	}
	return &SubmissionError{
		Stage:   stage,
		Message: stageMessages[stage] + ": " + cause,
		Err:     err,
	}
}

func validationError(err error) *SubmissionError {
	return &SubmissionError{Stage: StageValidation, Message: err.Error(), Err: err}
}

// Attachment is a featured-image file sent with a submission.
type Attachment struct {
	Filename string
	Size     int64
	Reader   io.Reader
}

// SubmitRequest is one create or edit submission.
type SubmitRequest struct {
	Form domain.SubmissionForm
	// EditingID selects edit mode when set.
	EditingID  string
	Image      *Attachment
	OnProgress storage.ProgressFunc
}

// SubmitResult is returned on success.
type SubmitResult struct {
	News          *domain.News          `json:"news"`
	Form          domain.SubmissionForm `json:"form"`
	RedirectTo    string                `json:"redirect_to"`
	RedirectAfter time.Duration         `json:"-"`
}

// SubmissionService runs the article create/edit workflow.
type SubmissionService struct {
	news          repository.NewsRepository
	authors       repository.AuthorRepository
	publishers    repository.PublisherRepository
	blobs         storage.BlobStore
	validator     *validator.Validator
	redirectDelay time.Duration
	now           func() time.Time
}

// NewSubmissionService creates a new SubmissionService.
func NewSubmissionService(
	newsRepo repository.NewsRepository,
	authorRepo repository.AuthorRepository,
	publisherRepo repository.PublisherRepository,
	blobs storage.BlobStore,
	v *validator.Validator,
	redirectDelay time.Duration,
) *SubmissionService {
	return &SubmissionService{
		news:          newsRepo,
		authors:       authorRepo,
		publishers:    publisherRepo,
		blobs:         blobs,
		validator:     v,
		redirectDelay: redirectDelay,
		now:           time.Now,
	}
}

// Submit validates the form, uploads the attached image, creates missing
// author and publisher entries and writes the article. Steps run in order
// and the first failure aborts the rest.
func (s *SubmissionService) Submit(ctx context.Context, req SubmitRequest) (result *SubmitResult, err error) {
	mode := "create"
	if req.EditingID != "" {
		mode = "edit"
	}
	start := time.Now()
	defer func() {
		outcome := "success"
		var subErr *SubmissionError
		if errors.As(err, &subErr) {
			outcome = string(subErr.Stage)
		}
		metrics.ObserveSubmission(mode, outcome, time.Since(start).Seconds())
	}()

	log := logger.FromContext(ctx).With(slog.String("mode", mode))

	form := req.Form.Normalized()
	if err := s.validator.ValidateSubmission(&form); err != nil {
		return nil, validationError(err)
	}

	if err := s.checkReferences(ctx, form); err != nil {
		return nil, err
	}

	if req.EditingID != "" {
		if _, err := s.news.Get(ctx, req.EditingID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				err = fmt.Errorf("news %w", domain.ErrNotFound)
			}
			return nil, newSubmissionError(StageNews, err)
		}
	}

	image := form.Image
	if req.Image != nil {
		url, err := s.uploadImage(ctx, req.Image, req.OnProgress)
		if err != nil {
			log.Error("Featured image upload failed", slog.String("error", err.Error()))
			return nil, newSubmissionError(StageUpload, err)
		}
		image = url
	}

	authorID := form.AuthorID
	if authorID == "" {
		author := &domain.Author{Name: form.AuthorName}
		if err := s.authors.Create(ctx, author); err != nil {
			return nil, newSubmissionError(StageAuthor, err)
		}
		authorID = author.ID
		log.Info("Author created", slog.String("author_id", authorID))
	}

	publisherID := form.PublisherID
	if publisherID == "" {
		publisher := &domain.Publisher{Name: form.PublisherName}
		if err := s.publishers.Create(ctx, publisher); err != nil {
			return nil, newSubmissionError(StagePublisher, err)
		}
		publisherID = publisher.ID
		log.Info("Publisher created", slog.String("publisher_id", publisherID))
	}

	n := &domain.News{
		Title:       form.Title,
		Body:        form.Body,
		Image:       domain.OptionalString(image),
		AuthorID:    domain.OptionalString(authorID),
		PublisherID: domain.OptionalString(publisherID),
	}

	if req.EditingID != "" {
		n.ID = req.EditingID
		err = s.news.Update(ctx, n)
	} else {
		createdAt := s.now().UTC()
		n.CreatedAt = &createdAt
		err = s.news.Create(ctx, n)
	}
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			err = fmt.Errorf("news %w", domain.ErrNotFound)
		}
		return nil, newSubmissionError(StageNews, err)
	}

	log.Info("Article saved", slog.String("news_id", n.ID))

	return &SubmitResult{
		News:          n,
		Form:          domain.SubmissionForm{},
		RedirectTo:    ListingPath,
		RedirectAfter: s.redirectDelay,
	}, nil
}

// LoadForEdit returns the form for editing an existing article.
func (s *SubmissionService) LoadForEdit(ctx context.Context, id string) (*domain.SubmissionForm, error) {
	n, err := s.news.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	form := domain.FormFromNews(n)
	return &form, nil
}

// checkReferences rejects selected ids that are not in the stored lists.
func (s *SubmissionService) checkReferences(ctx context.Context, form domain.SubmissionForm) error {
	if form.AuthorID != "" {
		authors, err := s.authors.List(ctx)
		if err != nil {
			return newSubmissionError(StageAuthor, err)
		}
		if _, ok := domain.FindAuthor(authors, form.AuthorID); !ok {
			return validationError(&validator.FieldError{Field: "author", Message: validator.MsgAuthorRequired})
		}
	}

	if form.PublisherID != "" {
		publishers, err := s.publishers.List(ctx)
		if err != nil {
			return newSubmissionError(StagePublisher, err)
		}
		if _, ok := domain.FindPublisher(publishers, form.PublisherID); !ok {
			return validationError(&validator.FieldError{Field: "publisher", Message: validator.MsgPublisherRequired})
		}
	}

	return nil
}

func (s *SubmissionService) uploadImage(ctx context.Context, a *Attachment, onProgress storage.ProgressFunc) (string, error) {
	path := storage.ArticleImagePath(s.now(), a.Filename)

	res, err := s.blobs.Upload(ctx, path, a.Reader, a.Size, onProgress)
	if err != nil {
		metrics.ObserveUpload("featured", "error", 0)
		return "", err
	}
	metrics.ObserveUpload("featured", "success", res.Size)

	url, err := s.blobs.URL(ctx, res.Path)
	if err != nil {
		return "", fmt.Errorf("resolve url: %w", err)
	}
	return url, nil
}
