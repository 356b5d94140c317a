// internal/domain/cart/store.go
package cart

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

// Store owns the cart state of one session. Writers are serialized; readers
// get the latest published snapshot.
type Store struct {
	mu      sync.Mutex
	state   State
	catalog ProductLookup
	logger  *logrus.Logger
}

// NewStore creates a store holding an empty cart
func NewStore(catalog ProductLookup, logger *logrus.Logger) *Store {
	return &Store{
		catalog: catalog,
		logger:  logger,
	}
}

// State returns the current cart snapshot
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// AddItem adds one unit of productID to the cart
func (s *Store) AddItem(ctx context.Context, productID string) (State, error) {
	return s.Dispatch(ctx, AddItem{ProductID: productID})
}

// UpdateQuantity changes the quantity of productID by delta
func (s *Store) UpdateQuantity(ctx context.Context, productID string, delta int) (State, error) {
	return s.Dispatch(ctx, UpdateQuantity{ProductID: productID, Delta: delta})
}

// Dispatch applies action to the current state. The new state is published
// only when the action succeeds.
func (s *Store) Dispatch(ctx context.Context, action Action) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fields := logrus.Fields{
		"action":     action.actionName(),
		"product_id": action.productID(),
	}
	if u, ok := action.(UpdateQuantity); ok {
		fields["delta"] = u.Delta
	}

	next, err := Reduce(ctx, s.state, action, s.catalog)
	if err != nil {
		s.logger.WithFields(fields).WithError(err).Warn("Cart action rejected")
		return s.state, err
	}

	s.state = next
	fields["items"] = next.Len()
	s.logger.WithFields(fields).Debug("Cart updated")
	return next, nil
}
