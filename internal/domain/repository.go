package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// CatalogRepository serves the immutable product catalog.
// Implementations return copies; callers may modify what they receive.
type CatalogRepository interface {
	All(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id int) (*Product, error)
	PaymentMethods(ctx context.Context) ([]PaymentMethod, error)
}

// Cart is the state container behind one shopper's cart
type Cart interface {
	Dispatch(action CartAction)
	Items() []CartLineItem
	Totals() CartTotals
	View() CartView
	Len() int
}

// Wishlist is the set of products a shopper saved for later
type Wishlist interface {
	Add(product Product) bool
	Remove(productID int) bool
	Contains(productID int) bool
	Items() []Product
	Len() int
}

// ShopperState is everything one browsing session owns
type ShopperState struct {
	User     *User
	Cart     Cart
	Wishlist Wishlist
}
