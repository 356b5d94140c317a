// internal/domain/cart/action.go
package cart

// Action is a cart transition. The set of actions is closed: AddItem and
// UpdateQuantity are the only implementations.
type Action interface {
	actionName() string
	productID() string
}

// AddItem adds one unit of a product, creating its line item on first add
type AddItem struct {
	ProductID string
}

// UpdateQuantity changes a line item's quantity by Delta, removing the item
// when the result is zero or less
type UpdateQuantity struct {
	ProductID string
	Delta     int
}

func (AddItem) actionName() string { return "add_item" }
func (a AddItem) productID() string { return a.ProductID }
func (UpdateQuantity) actionName() string { return "update_quantity" }
func (a UpdateQuantity) productID() string { return a.ProductID }
