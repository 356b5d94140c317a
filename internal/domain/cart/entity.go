// internal/domain/cart/entity.go
package cart

import "github.com/your-org/storefront/internal/pkg/money"

// LineItem is one product's entry in the cart. Name and Price are captured
// when the product is first added and never change afterwards.
type LineItem struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Price    money.Cents `json:"price"`
	Quantity int         `json:"quantity"`
}

// Subtotal returns Price times Quantity
func (i LineItem) Subtotal() money.Cents {
	return i.Price.Times(i.Quantity)
}

// State is an immutable cart snapshot. The zero value is the empty cart.
// Items keep the order in which products were first added.
type State struct {
	items []LineItem
}

// Items returns a copy of the line items
func (s State) Items() []LineItem {
	items := make([]LineItem, len(s.items))
	copy(items, s.items)
	return items
}

// Len returns the number of line items
func (s State) Len() int {
	return len(s.items)
}

// IsEmpty reports whether the cart has no items
func (s State) IsEmpty() bool {
	return len(s.items) == 0
}

// Find returns the line item for productID
func (s State) Find(productID string) (LineItem, bool) {
	if i := s.indexOf(productID); i >= 0 {
		return s.items[i], true
	}
	return LineItem{}, false
}

func (s State) indexOf(productID string) int {
	for i := range s.items {
		if s.items[i].ID == productID {
			return i
		}
	}
	return -1
}

// TotalPrice sums price times quantity over all items
func TotalPrice(s State) money.Cents {
	var total money.Cents
	for _, item := range s.items {
		total += item.Subtotal()
	}
	return total
}

// ItemCount returns the number of distinct products in the cart
func ItemCount(s State) int {
	return len(s.items)
}

// TotalQuantity sums the quantities of all items
func TotalQuantity(s State) int {
	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}
