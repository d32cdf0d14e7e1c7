package domain

// Author represents an article author. Authors are created and listed, never
// updated or deleted.
type Author struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Publisher represents an article publisher.
type Publisher struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// FindAuthor returns the author with the given id by linear lookup.
func FindAuthor(authors []Author, id string) (Author, bool) {
	for _, a := range authors {
		if a.ID == id {
			return a, true
		}
	}
	return Author{}, false
}

// FindPublisher returns the publisher with the given id by linear lookup.
func FindPublisher(publishers []Publisher, id string) (Publisher, bool) {
	for _, p := range publishers {
		if p.ID == id {
			return p, true
		}
	}
	return Publisher{}, false
}
