package usecase

import (
	"context"

	"github.com/elegance/storefront/internal/domain"
	"go.uber.org/zap"
)

// WishlistService manages a session's saved products. Unlike the cart it
// does not require a logged-in user. Callers hold the session lock.
type WishlistService struct {
	catalog domain.CatalogRepository
	logger  *zap.Logger
}

// NewWishlistService creates a wishlist service
func NewWishlistService(catalog domain.CatalogRepository, logger *zap.Logger) *WishlistService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WishlistService{
		catalog: catalog,
		logger:  logger.Named("wishlist"),
	}
}

// View lists the saved products, oldest first
func (s *WishlistService) View(state *domain.ShopperState) domain.WishlistView {
	return domain.WishlistView{
		Items: state.Wishlist.Items(),
		Count: state.Wishlist.Len(),
	}
}

// Add saves a catalog product. Saving it twice is a no-op.
func (s *WishlistService) Add(ctx context.Context, state *domain.ShopperState, productID int) (domain.WishlistView, error) {
	product, err := s.catalog.GetByID(ctx, productID)
	if err != nil {
		return domain.WishlistView{}, err
	}

	if state.Wishlist.Add(*product) {
		s.logger.Debug("added to wishlist", zap.Int("product_id", product.ID))
	}
	return s.View(state), nil
}

// Remove drops a saved product. Removing one that is not saved is a no-op.
func (s *WishlistService) Remove(state *domain.ShopperState, productID int) domain.WishlistView {
	if state.Wishlist.Remove(productID) {
		s.logger.Debug("removed from wishlist", zap.Int("product_id", productID))
	}
	return s.View(state)
}
