// internal/domain/cart/errors.go
package cart

import "errors"

var (
	// ErrUnknownProduct is returned when AddItem names a product the catalog does not have
	ErrUnknownProduct = errors.New("unknown product")

	// ErrItemNotInCart is returned when UpdateQuantity names a product that is not in the cart
	ErrItemNotInCart = errors.New("item not in cart")

	// ErrInvalidDelta is returned when UpdateQuantity is asked to change a quantity by zero
	ErrInvalidDelta = errors.New("quantity delta must not be zero")

	// ErrQuantityLimit is returned when a line item would exceed MaxQuantity or
	// the cart total would no longer fit in money.Cents
	ErrQuantityLimit = errors.New("cart quantity limit exceeded")
)
