package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/elegance/storefront/internal/domain"
	"go.uber.org/zap"
)

// CheckoutPath is where a shopper goes after a successful checkout request
const CheckoutPath = "/checkout"

// AddToCartRequest describes one add-to-cart click
type AddToCartRequest struct {
	ProductID     int
	Quantity      int
	SelectedColor string
	SelectedSize  string
}

// CartService applies shopper actions to a session's cart.
// Callers hold the session lock for the duration of each call.
type CartService struct {
	catalog    domain.CatalogRepository
	promoDelay time.Duration
	logger     *zap.Logger
}

// NewCartService creates a cart service
func NewCartService(catalog domain.CatalogRepository, promoDelay time.Duration, logger *zap.Logger) *CartService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CartService{
		catalog:    catalog,
		promoDelay: promoDelay,
		logger:     logger.Named("cart"),
	}
}

// View returns the cart contents and totals
func (s *CartService) View(state *domain.ShopperState) (domain.CartView, error) {
	if state.User == nil {
		return domain.CartView{}, domain.ErrLoginRequired
	}
	return state.Cart.View(), nil
}

// AddToCart snapshots the catalog product and merges it into the cart.
// A missing color defaults to the product's first color, a missing size to M.
// A color or size the product does not offer is ErrInvalidRequest.
func (s *CartService) AddToCart(ctx context.Context, state *domain.ShopperState, req AddToCartRequest) (domain.CartView, error) {
	if state.User == nil {
		return domain.CartView{}, domain.ErrLoginRequired
	}

	product, err := s.catalog.GetByID(ctx, req.ProductID)
	if err != nil {
		return domain.CartView{}, err
	}

	if req.SelectedColor != "" && !slices.Contains(product.Colors, req.SelectedColor) {
		return domain.CartView{}, fmt.Errorf("%w: product %d is not offered in color %q", domain.ErrInvalidRequest, product.ID, req.SelectedColor)
	}
	if req.SelectedSize != "" && !slices.Contains(product.Sizes, req.SelectedSize) {
		return domain.CartView{}, fmt.Errorf("%w: product %d is not offered in size %q", domain.ErrInvalidRequest, product.ID, req.SelectedSize)
	}

	key := domain.CartKey{
		ProductID:     product.ID,
		SelectedColor: req.SelectedColor,
		SelectedSize:  req.SelectedSize,
	}
	if key.SelectedColor == "" && len(product.Colors) > 0 {
		key.SelectedColor = product.Colors[0]
	}
	if key.SelectedSize == "" {
		key.SelectedSize = defaultSize(product.Sizes)
	}

	state.Cart.Dispatch(domain.CartAction{
		Type:     domain.ActionAddToCart,
		Product:  *product,
		Key:      key,
		Quantity: req.Quantity,
	})

	s.logger.Debug("added to cart",
		zap.Int("product_id", product.ID),
		zap.String("color", key.SelectedColor),
		zap.String("size", key.SelectedSize),
		zap.Int("quantity", req.Quantity),
	)
	return state.Cart.View(), nil
}

// RemoveFromCart drops the line item with the given key
func (s *CartService) RemoveFromCart(state *domain.ShopperState, key domain.CartKey) (domain.CartView, error) {
	if state.User == nil {
		return domain.CartView{}, domain.ErrLoginRequired
	}
	state.Cart.Dispatch(domain.CartAction{Type: domain.ActionRemoveFromCart, Key: key})
	return state.Cart.View(), nil
}

// UpdateQuantity sets a line item's quantity; values below 1 leave it unchanged
func (s *CartService) UpdateQuantity(state *domain.ShopperState, key domain.CartKey, quantity int) (domain.CartView, error) {
	if state.User == nil {
		return domain.CartView{}, domain.ErrLoginRequired
	}
	state.Cart.Dispatch(domain.CartAction{Type: domain.ActionUpdateQuantity, Key: key, Quantity: quantity})
	return state.Cart.View(), nil
}

// ClearCart empties the cart
func (s *CartService) ClearCart(state *domain.ShopperState) (domain.CartView, error) {
	if state.User == nil {
		return domain.CartView{}, domain.ErrLoginRequired
	}
	state.Cart.Dispatch(domain.CartAction{Type: domain.ActionClearCart})
	return state.Cart.View(), nil
}

// Checkout refuses an empty cart and otherwise hands over the totals
func (s *CartService) Checkout(state *domain.ShopperState) (*domain.CheckoutSummary, error) {
	if state.User == nil {
		return nil, domain.ErrLoginRequired
	}
	if state.Cart.Len() == 0 {
		return nil, domain.ErrEmptyCart
	}

	view := state.Cart.View()
	return &domain.CheckoutSummary{
		Totals:   view.CartTotals,
		Items:    view.ItemCount,
		NextStep: CheckoutPath,
	}, nil
}

// ApplyPromoCode checks a promo code. No code is ever valid; the answer
// arrives after the configured delay.
func (s *CartService) ApplyPromoCode(ctx context.Context, code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return fmt.Errorf("%w: promo code is required", domain.ErrInvalidRequest)
	}

	if err := simulateLatency(ctx, s.promoDelay); err != nil {
		return err
	}

	s.logger.Info("promo code rejected", zap.String("code", code))
	return domain.ErrInvalidPromoCode
}

// defaultSize is M when offered, else the first size; unsized products get none
func defaultSize(sizes []string) string {
	switch {
	case len(sizes) == 0:
		return ""
	case slices.Contains(sizes, "M"):
		return "M"
	}
	return sizes[0]
}
