package domain

import "time"

// FeedbackEntry is a site review. AuthorID/AuthorEmail record who wrote it;
// only the recorded author may edit or delete the entry.
type FeedbackEntry struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Rating      int       `json:"rating"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"created_at"`
	AuthorID    string    `json:"author_id,omitempty"`
	AuthorEmail string    `json:"author_email,omitempty"`
}
