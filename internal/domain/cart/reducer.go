// internal/domain/cart/reducer.go
package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/your-org/storefront/internal/domain/product"
	"github.com/your-org/storefront/internal/pkg/money"
)

// MaxQuantity is the largest quantity a single line item may hold
const MaxQuantity = 9999

// ProductLookup resolves the name and price of a product on first add
type ProductLookup interface {
	Lookup(ctx context.Context, id string) (product.Product, error)
}

// Reduce applies action to state and returns the next state. The input state
// is never modified; on error the input state is returned unchanged.
func Reduce(ctx context.Context, state State, action Action, catalog ProductLookup) (State, error) {
	switch a := action.(type) {
	case AddItem:
		return addItem(ctx, state, a, catalog)
	case UpdateQuantity:
		return updateQuantity(state, a)
	default:
		return state, fmt.Errorf("unsupported cart action %T", action)
	}
}

func addItem(ctx context.Context, state State, a AddItem, catalog ProductLookup) (State, error) {
	if i := state.indexOf(a.ProductID); i >= 0 {
		if state.items[i].Quantity >= MaxQuantity {
			return state, fmt.Errorf("%w: %s already at %d", ErrQuantityLimit, a.ProductID, MaxQuantity)
		}
		items := state.Items()
		items[i].Quantity++
		return checked(state, items)
	}

	p, err := catalog.Lookup(ctx, a.ProductID)
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			return state, fmt.Errorf("%w: %s", ErrUnknownProduct, a.ProductID)
		}
		return state, fmt.Errorf("failed to look up product %s: %w", a.ProductID, err)
	}

	items := make([]LineItem, len(state.items), len(state.items)+1)
	copy(items, state.items)
	items = append(items, LineItem{
		ID:       a.ProductID,
		Name:     p.Title,
		Price:    p.Price,
		Quantity: 1,
	})
	return checked(state, items)
}

func updateQuantity(state State, a UpdateQuantity) (State, error) {
	if a.Delta == 0 {
		return state, ErrInvalidDelta
	}

	i := state.indexOf(a.ProductID)
	if i < 0 {
		return state, fmt.Errorf("%w: %s", ErrItemNotInCart, a.ProductID)
	}

	current := state.items[i].Quantity
	if a.Delta > MaxQuantity-current {
		return state, fmt.Errorf("%w: %s cannot exceed %d", ErrQuantityLimit, a.ProductID, MaxQuantity)
	}

	newQuantity := current + a.Delta
	if newQuantity <= 0 {
		items := make([]LineItem, 0, len(state.items)-1)
		items = append(items, state.items[:i]...)
		items = append(items, state.items[i+1:]...)
		return State{items: items}, nil
	}

	items := state.Items()
	items[i].Quantity = newQuantity
	return checked(state, items)
}

// checked returns the state holding items if its total fits in money.Cents,
// otherwise the previous state and ErrQuantityLimit.
func checked(prev State, items []LineItem) (State, error) {
	var total money.Cents
	for _, item := range items {
		subtotal, ok := item.Price.CheckedTimes(item.Quantity)
		if ok {
			total, ok = total.CheckedAdd(subtotal)
		}
		if !ok {
			return prev, fmt.Errorf("%w: cart total overflows", ErrQuantityLimit)
		}
	}
	return State{items: items}, nil
}
