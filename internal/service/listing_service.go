package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"news-portal/internal/content"
	"news-portal/internal/domain"
	"news-portal/internal/live"
	"news-portal/internal/logger"
	"news-portal/internal/metrics"
	"news-portal/internal/repository"
)

var (
	// ErrConfirmationRequired is returned for deletes the user has not confirmed.
	ErrConfirmationRequired = errors.New("delete requires confirmation")
	// ErrDeleteInProgress is returned while a delete for the same article runs.
	ErrDeleteInProgress = errors.New("delete already in progress")
)

// ArticleView is an article prepared for display.
type ArticleView struct {
	ID             string                  `json:"id"`
	Title          string                  `json:"title"`
	Image          string                  `json:"image,omitempty"`
	CreatedAt      *time.Time              `json:"created_at,omitempty"`
	AuthorID       string                  `json:"authorId,omitempty"`
	AuthorName     string                  `json:"author_name"`
	PublisherID    string                  `json:"publisherId,omitempty"`
	PublisherName  string                  `json:"publisher_name"`
	ContentMode    content.Mode            `json:"content_mode"`
	Content        []content.RenderedBlock `json:"content"`
	DeleteDisabled bool                    `json:"delete_disabled"`
}

// ListingState is the listing as shown to a user.
type ListingState struct {
	Articles []ArticleView `json:"articles"`
	Loading  bool          `json:"loading"`
	Error    string        `json:"error,omitempty"`
}

// ListingService builds listing views and deletes articles.
type ListingService struct {
	news      repository.NewsRepository
	directory DirectoryServiceInterface
	feed      Subscriber

	mu       sync.Mutex
	deleting map[string]struct{}
	views    map[*ListingView]struct{}
}

// NewListingService creates a new ListingService.
func NewListingService(newsRepo repository.NewsRepository, directory DirectoryServiceInterface, feed Subscriber) *ListingService {
	return &ListingService{
		news:      newsRepo,
		directory: directory,
		feed:      feed,
		deleting:  make(map[string]struct{}),
		views:     make(map[*ListingView]struct{}),
	}
}

// Watch subscribes to the News feed and returns a view that rebuilds its
// state on every delivered snapshot. The author and publisher lists are
// loaded once.
func (s *ListingService) Watch(ctx context.Context) (*ListingView, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	view := &ListingView{
		svc:     s,
		dir:     s.loadDirectory(ctx),
		updates: make(chan ListingState, 1),
		deletes: make(chan struct{}, 1),
		state:   ListingState{Articles: []ArticleView{}, Loading: true},
	}
	view.sub = s.feed.Subscribe(ctx)

	s.mu.Lock()
	s.views[view] = struct{}{}
	s.mu.Unlock()

	go view.run()
	return view, nil
}

// Snapshot builds the listing once from the current store contents.
func (s *ListingService) Snapshot(ctx context.Context) *ListingState {
	dir := s.loadDirectory(ctx)
	items, err := s.news.List(ctx)
	state := s.buildState(dir, live.Snapshot{Items: items, Err: err})
	return &state
}

// Article builds the view of one article.
func (s *ListingService) Article(ctx context.Context, id string) (*ArticleView, error) {
	n, err := s.news.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	view := s.buildArticle(s.loadDirectory(ctx), n)
	return &view, nil
}

// Delete removes the article with id. Unconfirmed deletes are refused and
// a second delete of the same article is refused while the first runs.
// The article list itself changes only through the live feed; open views
// are told when the delete starts and ends.
func (s *ListingService) Delete(ctx context.Context, id string, confirmed bool) (err error) {
	if !confirmed {
		metrics.DeletionsTotal.WithLabelValues("unconfirmed").Inc()
		return ErrConfirmationRequired
	}

	s.mu.Lock()
	if _, busy := s.deleting[id]; busy {
		s.mu.Unlock()
		metrics.DeletionsTotal.WithLabelValues("in_progress").Inc()
		return ErrDeleteInProgress
	}
	s.deleting[id] = struct{}{}
	s.mu.Unlock()
	s.notifyViews()

	defer func() {
		s.mu.Lock()
		delete(s.deleting, id)
		s.mu.Unlock()
		s.notifyViews()
	}()

	if err := s.news.Delete(ctx, id); err != nil {
		metrics.DeletionsTotal.WithLabelValues("error").Inc()
		logger.FromContext(ctx).Error("Article delete failed",
			slog.String("news_id", id),
			slog.String("error", err.Error()))
		return err
	}

	metrics.DeletionsTotal.WithLabelValues("success").Inc()
	logger.FromContext(ctx).Info("Article deleted", slog.String("news_id", id))
	return nil
}

// IsDeleting reports whether a delete for id is in flight.
func (s *ListingService) IsDeleting(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, busy := s.deleting[id]
	return busy
}

func (s *ListingService) notifyViews() {
	s.mu.Lock()
	views := make([]*ListingView, 0, len(s.views))
	for v := range s.views {
		views = append(views, v)
	}
	s.mu.Unlock()

	for _, v := range views {
		select {
		case v.deletes <- struct{}{}:
		default:
		}
	}
}

func (s *ListingService) removeView(v *ListingView) {
	s.mu.Lock()
	delete(s.views, v)
	s.mu.Unlock()
}

// withDeleteState returns state with DeleteDisabled recomputed for every article.
func (s *ListingService) withDeleteState(state ListingState) ListingState {
	articles := make([]ArticleView, len(state.Articles))
	for i, a := range state.Articles {
		a.DeleteDisabled = s.IsDeleting(a.ID)
		articles[i] = a
	}
	state.Articles = articles
	return state
}

func (s *ListingService) loadDirectory(ctx context.Context) *Directory {
	dir, err := s.directory.Load(ctx)
	if err != nil {
		// Names fall back to their unresolved defaults.
		logger.FromContext(ctx).Warn("Directory load failed", slog.String("error", err.Error()))
		return &Directory{}
	}
	return dir
}

func (s *ListingService) buildState(dir *Directory, snap live.Snapshot) ListingState {
	if snap.Err != nil {
		return ListingState{Articles: []ArticleView{}, Error: listingErrorMessage(snap.Err)}
	}

	articles := make([]ArticleView, 0, len(snap.Items))
	for i := range snap.Items {
		articles = append(articles, s.buildArticle(dir, &snap.Items[i]))
	}
	return ListingState{Articles: articles}
}

func (s *ListingService) buildArticle(dir *Directory, n *domain.News) ArticleView {
	body := content.Parse(n.Body)
	return ArticleView{
		ID:             n.ID,
		Title:          n.Title,
		Image:          n.ImageURL(),
		CreatedAt:      n.CreatedAt,
		AuthorID:       n.AuthorRef(),
		AuthorName:     dir.AuthorName(n.AuthorRef()),
		PublisherID:    n.PublisherRef(),
		PublisherName:  dir.PublisherName(n.PublisherRef()),
		ContentMode:    body.Mode(),
		Content:        content.Render(body),
		DeleteDisabled: s.IsDeleting(n.ID),
	}
}

func listingErrorMessage(err error) string {
	cause := "Unknown error"
	if err.Error() != "" {
		cause = err.Error()
	}
	return "Failed to load articles: " + cause
}

// ListingView is a live listing. Each delivered snapshot replaces the
// article collection wholesale.
type ListingView struct {
	svc     *ListingService
	dir     *Directory
	sub     *live.Subscription
	updates chan ListingState
	deletes chan struct{}

	mu    sync.Mutex
	state ListingState
}

// State returns the latest state.
func (v *ListingView) State() ListingState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Updates delivers states as they change. Only the newest unread state is
// kept. The channel is closed after Close.
func (v *ListingView) Updates() <-chan ListingState {
	return v.updates
}

// Close stops the view. It is safe to call more than once.
func (v *ListingView) Close() {
	v.sub.Unsubscribe()
}

func (v *ListingView) run() {
	defer close(v.updates)
	defer v.svc.removeView(v)

	loaded := false
	for {
		select {
		case snap, ok := <-v.sub.C():
			if !ok {
				return
			}
			v.publish(v.svc.buildState(v.dir, snap))
			loaded = true
		case <-v.deletes:
			if loaded {
				v.publish(v.svc.withDeleteState(v.State()))
			}
		}
	}
}

func (v *ListingView) publish(state ListingState) {
	v.mu.Lock()
	v.state = state
	v.mu.Unlock()

	select {
	case <-v.updates:
	default:
	}
	v.updates <- state
}
