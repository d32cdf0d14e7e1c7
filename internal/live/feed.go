// Package live delivers full News snapshots to subscribers whenever the
// collection changes.
package live

import (
	"context"
	"sync"
	"sync/atomic"

	"news-portal/internal/domain"
	"news-portal/internal/metrics"
)

// NewsLister loads the full News collection.
type NewsLister interface {
	List(ctx context.Context) ([]domain.News, error)
}

// Snapshot is the full collection at one point in time, or the error that
// prevented loading it.
type Snapshot struct {
	Items   []domain.News
	Err     error
	Version uint64
}

// Feed fans snapshots out to subscribers.
type Feed struct {
	source NewsLister
	seq    atomic.Uint64

	mu   sync.Mutex
	subs map[*Subscription]struct{}
}

// NewFeed creates a Feed reading from source.
func NewFeed(source NewsLister) *Feed {
	return &Feed{
		source: source,
		subs:   make(map[*Subscription]struct{}),
	}
}

// Subscribe registers a subscriber and delivers the current snapshot to it.
// The caller must call Unsubscribe when done.
func (f *Feed) Subscribe(ctx context.Context) *Subscription {
	sub := &Subscription{feed: f, ch: make(chan Snapshot, 1)}

	f.mu.Lock()
	f.subs[sub] = struct{}{}
	f.mu.Unlock()
	metrics.LiveSubscribers.Inc()

	sub.offer(f.load(ctx))
	return sub
}

// Refresh reloads the collection and broadcasts it to every subscriber.
func (f *Feed) Refresh(ctx context.Context) error {
	snap := f.load(ctx)

	f.mu.Lock()
	subs := make([]*Subscription, 0, len(f.subs))
	for sub := range f.subs {
		subs = append(subs, sub)
	}
	f.mu.Unlock()

	for _, sub := range subs {
		sub.offer(snap)
	}
	return snap.Err
}

// Subscribers returns the number of active subscriptions.
func (f *Feed) Subscribers() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs)
}

func (f *Feed) load(ctx context.Context) Snapshot {
	version := f.seq.Add(1)
	timer := metrics.NewTimer()

	items, err := f.source.List(ctx)
	result := "success"
	if err != nil {
		result = "error"
	}
	timer.ObserveDuration(metrics.LiveRefreshDuration.WithLabelValues(result))

	return Snapshot{Items: items, Err: err, Version: version}
}

func (f *Feed) remove(sub *Subscription) {
	f.mu.Lock()
	delete(f.subs, sub)
	f.mu.Unlock()
	metrics.LiveSubscribers.Dec()
}

// Subscription receives snapshots. At most one snapshot is pending; a newer
// one replaces an unread older one.
type Subscription struct {
	feed *Feed
	ch   chan Snapshot
	once sync.Once

	mu      sync.Mutex
	closed  bool
	version uint64
}

// C returns the snapshot channel. It is closed by Unsubscribe.
func (s *Subscription) C() <-chan Snapshot {
	return s.ch
}

// Unsubscribe stops delivery and closes the channel. It is safe to call twice.
func (s *Subscription) Unsubscribe() {
	s.once.Do(func() {
		s.feed.remove(s)

		s.mu.Lock()
		s.closed = true
		close(s.ch)
		s.mu.Unlock()
	})
}

func (s *Subscription) offer(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Loads started earlier than the last delivered one are stale.
	if s.closed || snap.Version <= s.version {
		return
	}
	s.version = snap.Version

	select {
	case <-s.ch:
	default:
	}
	s.ch <- snap
}
