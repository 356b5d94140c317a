// internal/domain/cart/service.go
package cart

import (
	"context"

	"github.com/your-org/storefront/internal/pkg/money"
)

// StoreProvider hands out the cart store of a session
type StoreProvider interface {
	Get(sessionID string) *Store
	Delete(sessionID string)
}

// Service handles cart business logic on behalf of the HTTP layer
type Service struct {
	stores StoreProvider
}

// NewService creates a new cart service
func NewService(stores StoreProvider) *Service {
	return &Service{
		stores: stores,
	}
}

// CartItemResponse represents a line item with its subtotal
type CartItemResponse struct {
	ID                string      `json:"id"`
	Name              string      `json:"name"`
	Price             money.Cents `json:"price"`
	FormattedPrice    string      `json:"formatted_price"`
	Quantity          int         `json:"quantity"`
	Subtotal          money.Cents `json:"subtotal"`
	FormattedSubtotal string      `json:"formatted_subtotal"`
}

// CartTotals represents calculated cart totals
type CartTotals struct {
	ItemCount      int         `json:"item_count"`     // Number of unique items
	TotalQuantity  int         `json:"total_quantity"` // Sum of all quantities
	TotalPrice     money.Cents `json:"total_price"`
	FormattedTotal string      `json:"formatted_total"`
}

// CartResponse represents a shopping cart with items and summary
type CartResponse struct {
	SessionID string             `json:"session_id"`
	Items     []CartItemResponse `json:"items"`
	Totals    CartTotals         `json:"totals"`
}

// AddToCartRequest represents add to cart request
type AddToCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// UpdateCartItemRequest represents update cart item request
type UpdateCartItemRequest struct {
	Delta int `json:"delta"`
}

// GetCart retrieves the session's cart
func (s *Service) GetCart(sessionID string) *CartResponse {
	return NewCartResponse(sessionID, s.stores.Get(sessionID).State())
}

// AddToCart adds one unit of a product to the session's cart
func (s *Service) AddToCart(ctx context.Context, sessionID string, req *AddToCartRequest) (*CartResponse, error) {
	state, err := s.stores.Get(sessionID).AddItem(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	return NewCartResponse(sessionID, state), nil
}

// UpdateCartItem changes the quantity of a cart item by the requested delta
func (s *Service) UpdateCartItem(ctx context.Context, sessionID, productID string, req *UpdateCartItemRequest) (*CartResponse, error) {
	state, err := s.stores.Get(sessionID).UpdateQuantity(ctx, productID, req.Delta)
	if err != nil {
		return nil, err
	}
	return NewCartResponse(sessionID, state), nil
}

// ClearCart discards the session's cart. The next request starts from an empty one.
func (s *Service) ClearCart(sessionID string) *CartResponse {
	s.stores.Delete(sessionID)
	return NewCartResponse(sessionID, State{})
}

// NewCartResponse renders a cart snapshot with its derived totals
func NewCartResponse(sessionID string, state State) *CartResponse {
	items := make([]CartItemResponse, 0, state.Len())
	for _, item := range state.items {
		items = append(items, CartItemResponse{
			ID:                item.ID,
			Name:              item.Name,
			Price:             item.Price,
			FormattedPrice:    item.Price.String(),
			Quantity:          item.Quantity,
			Subtotal:          item.Subtotal(),
			FormattedSubtotal: item.Subtotal().String(),
		})
	}

	total := TotalPrice(state)
	return &CartResponse{
		SessionID: sessionID,
		Items:     items,
		Totals: CartTotals{
			ItemCount:      ItemCount(state),
			TotalQuantity:  TotalQuantity(state),
			TotalPrice:     total,
			FormattedTotal: total.String(),
		},
	}
}
