package domain

import "strings"

// SubmissionForm is the editable state of the article form.
type SubmissionForm struct {
	Title         string `json:"title" form:"title"`
	Body          string `json:"body" form:"body"`
	Image         string `json:"image" form:"image"`
	AuthorID      string `json:"authorId" form:"authorId"`
	AuthorName    string `json:"authorName" form:"authorName"`
	PublisherID   string `json:"publisherId" form:"publisherId"`
	PublisherName string `json:"publisherName" form:"publisherName"`
}

// Normalized returns a copy with surrounding whitespace removed from the
// identifying fields. Body is left as typed.
func (f SubmissionForm) Normalized() SubmissionForm {
	f.Title = strings.TrimSpace(f.Title)
	f.Image = strings.TrimSpace(f.Image)
	f.AuthorID = strings.TrimSpace(f.AuthorID)
	f.AuthorName = strings.TrimSpace(f.AuthorName)
	f.PublisherID = strings.TrimSpace(f.PublisherID)
	f.PublisherName = strings.TrimSpace(f.PublisherName)
	return f
}

// FormFromNews fills a form from a stored record. Name fields stay empty
// because the record references existing entries by id.
func FormFromNews(n *News) SubmissionForm {
	return SubmissionForm{
		Title:       n.Title,
		Body:        n.Body,
		Image:       n.ImageURL(),
		AuthorID:    n.AuthorRef(),
		PublisherID: n.PublisherRef(),
	}
}
