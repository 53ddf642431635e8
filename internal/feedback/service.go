// Package feedback owns the feedback collection. Entries carry the author
// recorded at submission time; only that author may edit or delete them.
package feedback

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"pawfinder/internal/bus"
	"pawfinder/internal/domain"
	"pawfinder/internal/storage"
)

// Slot is the collection key for persisted feedback entries.
const Slot = "feedback"

type Service struct {
	store  *storage.Store
	bus    *bus.Bus
	logger *log.Logger
}

func New(store *storage.Store, b *bus.Bus, logger *log.Logger) *Service {
	return &Service{store: store, bus: b, logger: logger}
}

type AddInput struct {
	Name    string `json:"name"`
	Rating  int    `json:"rating"`
	Message string `json:"message"`
}

type EditInput struct {
	Name    string `json:"name"`
	Rating  int    `json:"rating"`
	Message string `json:"message"`
}

// List returns all entries, newest first.
func (s *Service) List() []domain.FeedbackEntry {
	entries := storage.Load[domain.FeedbackEntry](s.store, Slot)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	return entries
}

// Add records a new entry attributed to the given session. The display name
// falls back to the session's name, then to Anonymous.
func (s *Service) Add(sess *domain.Session, in AddInput) (domain.FeedbackEntry, error) {
	if strings.TrimSpace(in.Message) == "" {
		return domain.FeedbackEntry{}, fmt.Errorf("%w: message required", domain.ErrInvalid)
	}
	if in.Rating < 1 || in.Rating > 5 {
		return domain.FeedbackEntry{}, fmt.Errorf("%w: rating must be between 1 and 5", domain.ErrInvalid)
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = sess.DisplayName()
	}
	if name == "" {
		name = "Anonymous"
	}

	entry := domain.FeedbackEntry{
		ID:        uuid.NewString(),
		Name:      name,
		Rating:    in.Rating,
		Message:   strings.TrimSpace(in.Message),
		CreatedAt: time.Now().UTC(),
	}
	if sess != nil {
		entry.AuthorID = sess.ID
		entry.AuthorEmail = sess.Email
	}

	s.replace(append([]domain.FeedbackEntry{entry}, storage.Load[domain.FeedbackEntry](s.store, Slot)...))
	return entry, nil
}

// Edit updates an entry in place. Anyone but the recorded author is rejected
// with no mutation.
func (s *Service) Edit(sess *domain.Session, id string, in EditInput) error {
	if in.Rating < 1 || in.Rating > 5 {
		return fmt.Errorf("%w: rating must be between 1 and 5", domain.ErrInvalid)
	}
	entries := storage.Load[domain.FeedbackEntry](s.store, Slot)
	for i, entry := range entries {
		if entry.ID != id {
			continue
		}
		if !isAuthor(sess, entry) {
			return domain.ErrNotAuthor
		}
		name := strings.TrimSpace(in.Name)
		if name == "" {
			name = "Anonymous"
		}
		entries[i].Name = name
		entries[i].Rating = in.Rating
		entries[i].Message = strings.TrimSpace(in.Message)
		s.replace(entries)
		return nil
	}
	return domain.ErrNotFound
}

// Delete removes an entry. Only the recorded author may delete it.
func (s *Service) Delete(sess *domain.Session, id string) error {
	entries := storage.Load[domain.FeedbackEntry](s.store, Slot)
	for i, entry := range entries {
		if entry.ID != id {
			continue
		}
		if !isAuthor(sess, entry) {
			return domain.ErrNotAuthor
		}
		s.replace(append(entries[:i:i], entries[i+1:]...))
		return nil
	}
	return domain.ErrNotFound
}

// SeedIfEmpty installs the sample entries shown before anyone has posted.
// Seeded entries carry no author id, so any signed-in user may curate them.
func (s *Service) SeedIfEmpty() {
	if len(storage.Load[domain.FeedbackEntry](s.store, Slot)) > 0 {
		return
	}
	now := time.Now().UTC()
	s.replace([]domain.FeedbackEntry{
		{ID: uuid.NewString(), Name: "Ananya", Rating: 5, Message: "Lovely site, very easy to use!", CreatedAt: now.Add(-24 * time.Hour)},
		{ID: uuid.NewString(), Name: "Ravi", Rating: 4, Message: "Good recommendations, model is impressive.", CreatedAt: now.Add(-12 * time.Hour)},
		{ID: uuid.NewString(), Name: "Meera", Rating: 3, Message: "Checkout flow could be smoother on mobile.", CreatedAt: now.Add(-30 * time.Minute)},
	})
}

// isAuthor mirrors the site's rule: a signed-in user may act on an entry
// that either records them as the author or records no author at all.
func isAuthor(sess *domain.Session, entry domain.FeedbackEntry) bool {
	if sess == nil {
		return false
	}
	return entry.AuthorID == "" || entry.AuthorID == sess.ID
}

func (s *Service) replace(entries []domain.FeedbackEntry) {
	if err := storage.Replace(s.store, Slot, entries); err != nil {
		s.logger.Printf("feedback: replace degraded: %v", err)
	}
	s.bus.Publish(bus.FeedbackUpdated)
}
