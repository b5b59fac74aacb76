package usecase

import (
	"slices"

	"github.com/elegance/storefront/internal/domain"
)

// WishlistStore keeps saved products in the order they were first added.
// It is not safe for concurrent use; the owner serializes access.
type WishlistStore struct {
	items []domain.Product
}

// NewWishlistStore creates an empty wishlist
func NewWishlistStore() *WishlistStore {
	return &WishlistStore{items: []domain.Product{}}
}

// Add saves a snapshot of product. It reports false when the product was
// already saved, leaving the earlier snapshot in place.
func (s *WishlistStore) Add(product domain.Product) bool {
	if s.Contains(product.ID) {
		return false
	}
	s.items = append(s.items, product.Clone())
	return true
}

// Remove drops a saved product and reports whether it was present
func (s *WishlistStore) Remove(productID int) bool {
	idx := s.indexOf(productID)
	if idx < 0 {
		return false
	}
	s.items = slices.Delete(s.items, idx, idx+1)
	return true
}

// Contains reports whether productID is saved
func (s *WishlistStore) Contains(productID int) bool {
	return s.indexOf(productID) >= 0
}

// Items returns copies of the saved products
func (s *WishlistStore) Items() []domain.Product {
	out := make([]domain.Product, len(s.items))
	for i, p := range s.items {
		out[i] = p.Clone()
	}
	return out
}

func (s *WishlistStore) Len() int { return len(s.items) }

func (s *WishlistStore) indexOf(productID int) int {
	return slices.IndexFunc(s.items, func(p domain.Product) bool { return p.ID == productID })
}

// NewShopperState is the state a fresh session starts with: no user, an
// empty cart and an empty wishlist.
func NewShopperState(pricing CartPricing) domain.ShopperState {
	return domain.ShopperState{
		Cart:     NewCartStore(pricing),
		Wishlist: NewWishlistStore(),
	}
}
