// Package cart owns the cart collection. The cart is append-structured:
// adding the same listing twice yields two line items, and removal drops
// every line that matches the listing id.
package cart

import (
	"fmt"
	"log"
	"strings"

	"pawfinder/internal/bus"
	"pawfinder/internal/domain"
	"pawfinder/internal/storage"
)

// Slot is the collection key for persisted cart items.
const Slot = "cart"

type Service struct {
	store  *storage.Store
	bus    *bus.Bus
	logger *log.Logger
}

func New(store *storage.Store, b *bus.Bus, logger *log.Logger) *Service {
	return &Service{store: store, bus: b, logger: logger}
}

func (s *Service) Items() []domain.CartItem {
	return storage.Load[domain.CartItem](s.store, Slot)
}

// Add appends the item as a new line. Duplicates are allowed.
func (s *Service) Add(item domain.CartItem) error {
	if strings.TrimSpace(item.ListingID) == "" || strings.TrimSpace(item.Breed) == "" {
		return fmt.Errorf("%w: listingId and breed required", domain.ErrInvalid)
	}
	if item.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", domain.ErrInvalid)
	}
	s.replace(append(s.Items(), item))
	return nil
}

// Remove drops all items matching the listing id, preserving the relative
// order of the remainder.
func (s *Service) Remove(listingID string) {
	items := s.Items()
	kept := items[:0:0]
	for _, it := range items {
		if it.ListingID != listingID {
			kept = append(kept, it)
		}
	}
	s.replace(kept)
}

func (s *Service) Clear() {
	s.replace([]domain.CartItem{})
}

func (s *Service) replace(items []domain.CartItem) {
	if err := storage.Replace(s.store, Slot, items); err != nil {
		s.logger.Printf("cart: replace degraded: %v", err)
	}
	s.bus.Publish(bus.CartUpdated)
}
