package domain

import "time"

// HistoryEntry is an append-only record of a contact message sent to a
// seller. Entries are never mutated, only appended and read.
type HistoryEntry struct {
	ID        string    `json:"id"`
	Breed     string    `json:"breed"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
