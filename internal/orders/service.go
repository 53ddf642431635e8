// Package orders owns the orders collection and the local-first submission
// flow: commit locally, notify other views, then try the remote order
// service once without blocking the caller.
package orders

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"pawfinder/internal/bus"
	"pawfinder/internal/domain"
	"pawfinder/internal/reconcile"
	"pawfinder/internal/storage"
)

// Slot is the collection key for persisted orders, newest first.
const Slot = "orders"

type Service struct {
	store    *storage.Store
	bus      *bus.Bus
	remote   *reconcile.Client
	validate validator
	logger   *log.Logger
}

func New(store *storage.Store, b *bus.Bus, remote *reconcile.Client, logger *log.Logger) *Service {
	return &Service{
		store:    store,
		bus:      b,
		remote:   remote,
		validate: newValidator(),
		logger:   logger,
	}
}

// Submit commits the order locally and returns once it is visible to every
// other view. The remote attempt runs afterwards on its own goroutine; its
// outcome arrives on the returned channel (buffered, so it may be ignored)
// and can never be ready before the local commit.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (domain.Order, <-chan reconcile.Outcome, error) {
	if err := s.validate.Struct(in); err != nil {
		return domain.Order{}, nil, fmt.Errorf("%w: %v", domain.ErrInvalid, err)
	}

	order := domain.NewOrder(
		uuid.NewString(),
		in.Buyer.buyer(),
		in.items(),
		in.PaymentMethod,
		in.PaymentChannel,
		in.Notes,
		time.Now().UTC(),
	)

	existing := storage.Load[domain.Order](s.store, Slot)
	if err := storage.Replace(s.store, Slot, append([]domain.Order{order}, existing...)); err != nil {
		s.logger.Printf("orders: local commit of %s degraded: %v", order.ID, err)
	}
	s.bus.Publish(bus.OrdersUpdated)

	outcome := make(chan reconcile.Outcome, 1)
	go func() {
		// the attempt survives the caller's request lifetime: there is no
		// cancellation and no deadline of our own
		outcome <- s.remote.Push(context.WithoutCancel(ctx), order)
	}()

	return order, outcome, nil
}

// List returns the orders collection, newest first.
func (s *Service) List() []domain.Order {
	return storage.Load[domain.Order](s.store, Slot)
}

// Clear drops every stored order. It is the only way an order is destroyed.
func (s *Service) Clear() {
	if err := storage.Replace(s.store, Slot, []domain.Order{}); err != nil {
		s.logger.Printf("orders: clear degraded: %v", err)
	}
	s.bus.Publish(bus.OrdersUpdated)
}
