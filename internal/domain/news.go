package domain

import "time"

// News represents an article entity in the system.
// Body holds the content block format; see package content.
type News struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Body        string     `json:"body"`
	Image       *string    `json:"image,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	AuthorID    *string    `json:"authorId,omitempty"`
	PublisherID *string    `json:"publisherId,omitempty"`
}

// ImageURL returns the featured image URL or an empty string.
func (n *News) ImageURL() string {
	if n.Image == nil {
		return ""
	}
	return *n.Image
}

// AuthorRef returns the author reference or an empty string.
func (n *News) AuthorRef() string {
	if n.AuthorID == nil {
		return ""
	}
	return *n.AuthorID
}

// PublisherRef returns the publisher reference or an empty string.
func (n *News) PublisherRef() string {
	if n.PublisherID == nil {
		return ""
	}
	return *n.PublisherID
}

// OptionalString returns nil for an empty string, otherwise a pointer to s.
func OptionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
