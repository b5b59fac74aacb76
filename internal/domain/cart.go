package domain

import "github.com/shopspring/decimal"

// CartKey identifies a cart line item: one product in one color/size combination
type CartKey struct {
	ProductID     int    `json:"productId"`
	SelectedColor string `json:"selectedColor,omitempty"`
	SelectedSize  string `json:"selectedSize,omitempty"`
}

// CartLineItem is a product snapshot taken at add time plus the chosen variant
type CartLineItem struct {
	Product
	SelectedColor string `json:"selectedColor,omitempty"`
	SelectedSize  string `json:"selectedSize,omitempty"`
	Quantity      int    `json:"quantity"`
}

// Key returns the identity key used for merging and lookups
func (i CartLineItem) Key() CartKey {
	return CartKey{
		ProductID:     i.ID,
		SelectedColor: i.SelectedColor,
		SelectedSize:  i.SelectedSize,
	}
}

// LineTotal is price times quantity
func (i CartLineItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// CartTotals are derived on read and never stored
type CartTotals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
}

// CartActionType enumerates the cart transitions
type CartActionType string

const (
	ActionAddToCart      CartActionType = "cart/addToCart"
	ActionRemoveFromCart CartActionType = "cart/removeFromCart"
	ActionUpdateQuantity CartActionType = "cart/updateQuantity"
	ActionClearCart      CartActionType = "cart/clearCart"
)

// CartAction is one dispatched transition. Product is only read for adds.
type CartAction struct {
	Type     CartActionType
	Product  Product
	Key      CartKey
	Quantity int
}

// CartView is what consumers read: items and derived totals together
type CartView struct {
	Items     []CartLineItem `json:"items"`
	ItemCount int            `json:"itemCount"`
	CartTotals
}

// CheckoutSummary is returned when a non-empty cart proceeds to checkout
type CheckoutSummary struct {
	Totals   CartTotals `json:"totals"`
	Items    int        `json:"items"`
	NextStep string     `json:"nextStep"`
}

// WishlistView is the wishlist as returned to the shopper
type WishlistView struct {
	Items []Product `json:"items"`
	Count int       `json:"count"`
}
