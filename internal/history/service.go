// Package history owns the append-only record of contact messages sent to
// sellers. Entries are never edited or removed.
package history

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"pawfinder/internal/bus"
	"pawfinder/internal/domain"
	"pawfinder/internal/storage"
)

// Slot is the collection key for persisted history entries.
const Slot = "history"

type Service struct {
	store  *storage.Store
	bus    *bus.Bus
	logger *log.Logger
}

func New(store *storage.Store, b *bus.Bus, logger *log.Logger) *Service {
	return &Service{store: store, bus: b, logger: logger}
}

// Append records one contact message and returns the stored entry.
func (s *Service) Append(breed, message string) (domain.HistoryEntry, error) {
	if strings.TrimSpace(message) == "" {
		return domain.HistoryEntry{}, fmt.Errorf("%w: message required", domain.ErrInvalid)
	}
	entry := domain.HistoryEntry{
		ID:        uuid.NewString(),
		Breed:     strings.TrimSpace(breed),
		Message:   strings.TrimSpace(message),
		CreatedAt: time.Now().UTC(),
	}
	next := append(storage.Load[domain.HistoryEntry](s.store, Slot), entry)
	if err := storage.Replace(s.store, Slot, next); err != nil {
		s.logger.Printf("history: append degraded: %v", err)
	}
	s.bus.Publish(bus.HistoryUpdated)
	return entry, nil
}

// Entries returns the history in insertion order, oldest first.
func (s *Service) Entries() []domain.HistoryEntry {
	return storage.Load[domain.HistoryEntry](s.store, Slot)
}
