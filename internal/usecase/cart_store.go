package usecase

import (
	"slices"

	"github.com/elegance/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

// CartPricing holds the shipping rules used to derive cart totals
type CartPricing struct {
	FreeShippingThreshold decimal.Decimal // shipping is free strictly above this subtotal
	ShippingFee           decimal.Decimal
}

// DefaultCartPricing is free shipping over 50, otherwise 5.99
func DefaultCartPricing() CartPricing {
	return CartPricing{
		FreeShippingThreshold: decimal.NewFromInt(50),
		ShippingFee:           decimal.RequireFromString("5.99"),
	}
}

// CartStore is an ordered, keyed collection of cart line items.
//
// Every mutation is one synchronous transition over the whole collection.
// CartStore is not safe for concurrent use; the owner serializes access.
type CartStore struct {
	items   []domain.CartLineItem
	pricing CartPricing
}

// NewCartStore creates an empty cart
func NewCartStore(pricing CartPricing) *CartStore {
	return &CartStore{
		items:   []domain.CartLineItem{},
		pricing: pricing,
	}
}

// Dispatch applies one action. Unknown action types are ignored.
func (s *CartStore) Dispatch(action domain.CartAction) {
	switch action.Type {
	case domain.ActionAddToCart:
		s.AddToCart(action.Product, action.Quantity, action.Key.SelectedColor, action.Key.SelectedSize)
	case domain.ActionRemoveFromCart:
		s.RemoveFromCart(action.Key)
	case domain.ActionUpdateQuantity:
		s.UpdateQuantity(action.Key, action.Quantity)
	case domain.ActionClearCart:
		s.ClearCart()
	}
}

// AddToCart merges into the line item with the same (id, color, size) key or
// appends a new one. Quantities below 1 count as 1.
func (s *CartStore) AddToCart(product domain.Product, quantity int, selectedColor, selectedSize string) {
	if quantity < 1 {
		quantity = 1
	}

	key := domain.CartKey{
		ProductID:     product.ID,
		SelectedColor: selectedColor,
		SelectedSize:  selectedSize,
	}
	if idx := s.indexOf(key); idx >= 0 {
		s.items[idx].Quantity += quantity
		return
	}

	s.items = append(s.items, domain.CartLineItem{
		Product:       product.Clone(),
		SelectedColor: selectedColor,
		SelectedSize:  selectedSize,
		Quantity:      quantity,
	})
}

// RemoveFromCart drops the line item with the given key, if any
func (s *CartStore) RemoveFromCart(key domain.CartKey) {
	s.items = slices.DeleteFunc(s.items, func(item domain.CartLineItem) bool {
		return item.Key() == key
	})
}

// UpdateQuantity sets the quantity of the line item with the given key.
// Quantities below 1 are ignored; removal goes through RemoveFromCart.
func (s *CartStore) UpdateQuantity(key domain.CartKey, quantity int) {
	if quantity < 1 {
		return
	}
	if idx := s.indexOf(key); idx >= 0 {
		s.items[idx].Quantity = quantity
	}
}

// ClearCart empties the cart
func (s *CartStore) ClearCart() {
	s.items = []domain.CartLineItem{}
}

// Items returns a snapshot in insertion order
func (s *CartStore) Items() []domain.CartLineItem {
	out := make([]domain.CartLineItem, len(s.items))
	for i, item := range s.items {
		item.Product = item.Product.Clone()
		out[i] = item
	}
	return out
}

// Len is the number of line items, not the number of units
func (s *CartStore) Len() int {
	return len(s.items)
}

// Totals derives subtotal, shipping, discount and total from the current items
func (s *CartStore) Totals() domain.CartTotals {
	subtotal := decimal.Zero
	for _, item := range s.items {
		subtotal = subtotal.Add(item.LineTotal())
	}

	shipping := s.pricing.ShippingFee
	if subtotal.GreaterThan(s.pricing.FreeShippingThreshold) {
		shipping = decimal.Zero
	}

	// Promo codes are never accepted, so nothing is ever discounted
	discount := decimal.Zero

	return domain.CartTotals{
		Subtotal: subtotal,
		Shipping: shipping,
		Discount: discount,
		Total:    subtotal.Add(shipping).Sub(discount),
	}
}

// View bundles a snapshot of the items with the derived totals
func (s *CartStore) View() domain.CartView {
	units := 0
	for _, item := range s.items {
		units += item.Quantity
	}
	return domain.CartView{
		Items:      s.Items(),
		ItemCount:  units,
		CartTotals: s.Totals(),
	}
}

func (s *CartStore) indexOf(key domain.CartKey) int {
	return slices.IndexFunc(s.items, func(item domain.CartLineItem) bool {
		return item.Key() == key
	})
}
