package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/elegance/storefront/internal/domain"
	"github.com/elegance/storefront/internal/usecase"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	catalog   *usecase.CatalogService
	carts     *usecase.CartService
	wishlists *usecase.WishlistService
	auth      *usecase.AuthService
	logger    *zap.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(
	catalog *usecase.CatalogService,
	carts *usecase.CartService,
	wishlists *usecase.WishlistService,
	auth *usecase.AuthService,
	logger *zap.Logger,
) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		catalog:   catalog,
		carts:     carts,
		wishlists: wishlists,
		auth:      auth,
		logger:    logger.Named("http"),
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "storefront",
		"version": "1.0.0",
	})
}

// GetFilterMetadata lists the filter options for a listing
func (h *Handler) GetFilterMetadata(c *gin.Context) {
	listing, err := domain.ParseListing(c.Query("listing"))
	if err != nil {
		respondError(c, err)
		return
	}

	meta, err := h.catalog.FilterMetadata(c.Request.Context(), listing)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meta)
}

// ListProducts filters and sorts a listing from query parameters
func (h *Handler) ListProducts(c *gin.Context) {
	criteria, err := criteriaFromQuery(c, h.catalog.Defaults())
	if err != nil {
		respondError(c, err)
		return
	}

	products, err := h.catalog.ListProducts(c.Request.Context(), criteria)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products":          products,
		"count":             len(products),
		"criteria":          criteria,
		"activeFilterCount": h.catalog.Defaults().ActiveFilterCount(criteria),
	})
}

// GetProduct returns a single product
func (h *Handler) GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, domain.ErrInvalidRequest)
		return
	}

	product, err := h.catalog.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// GetCategoryProducts lists one category
func (h *Handler) GetCategoryProducts(c *gin.Context) {
	products, err := h.catalog.ProductsByCategory(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products, "count": len(products)})
}

// SearchProducts matches product names against ?q=
func (h *Handler) SearchProducts(c *gin.Context) {
	query := c.Query("q")
	products, err := h.catalog.Search(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"query": query, "products": products, "count": len(products)})
}

// GetSaleTabs groups sale products by discount depth
func (h *Handler) GetSaleTabs(c *gin.Context) {
	tabs, err := h.catalog.SaleTabs(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tabs)
}

// GetPaymentMethods lists the stored cards
func (h *Handler) GetPaymentMethods(c *gin.Context) {
	methods, err := h.catalog.PaymentMethods(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"paymentMethods": methods})
}

type loginRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	RememberMe bool   `json:"rememberMe"`
}

// Login simulates signing in and attaches the demo user to the session
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	sess := sessionFrom(c)
	_ = sess.Do(func(state *domain.ShopperState) error {
		state.User = user
		return nil
	})

	c.JSON(http.StatusOK, gin.H{
		"user":    user,
		"message": "Welcome back to Elegance!",
	})
}

// Logout drops the user from the session; the cart stays
func (h *Handler) Logout(c *gin.Context) {
	sess := sessionFrom(c)
	_ = sess.Do(func(state *domain.ShopperState) error {
		state.User = nil
		return nil
	})
	c.Status(http.StatusNoContent)
}

// GetCart returns the session's cart
func (h *Handler) GetCart(c *gin.Context) {
	h.withCart(c, http.StatusOK, func(state *domain.ShopperState) (domain.CartView, error) {
		return h.carts.View(state)
	})
}

type addItemRequest struct {
	ProductID     int    `json:"productId" binding:"required,gt=0"`
	Quantity      int    `json:"quantity"`
	SelectedColor string `json:"selectedColor"`
	SelectedSize  string `json:"selectedSize"`
}

// AddCartItem adds a product variant to the cart
func (h *Handler) AddCartItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	ctx := c.Request.Context()
	h.withCart(c, http.StatusOK, func(state *domain.ShopperState) (domain.CartView, error) {
		return h.carts.AddToCart(ctx, state, usecase.AddToCartRequest{
			ProductID:     req.ProductID,
			Quantity:      req.Quantity,
			SelectedColor: req.SelectedColor,
			SelectedSize:  req.SelectedSize,
		})
	})
}

type itemKeyRequest struct {
	ProductID     int    `json:"productId" binding:"required,gt=0"`
	SelectedColor string `json:"selectedColor"`
	SelectedSize  string `json:"selectedSize"`
	Quantity      int    `json:"quantity"`
}

func (r itemKeyRequest) key() domain.CartKey {
	return domain.CartKey{
		ProductID:     r.ProductID,
		SelectedColor: r.SelectedColor,
		SelectedSize:  r.SelectedSize,
	}
}

// UpdateCartItem sets the quantity of one line item
func (h *Handler) UpdateCartItem(c *gin.Context) {
	var req itemKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	h.withCart(c, http.StatusOK, func(state *domain.ShopperState) (domain.CartView, error) {
		return h.carts.UpdateQuantity(state, req.key(), req.Quantity)
	})
}

// RemoveCartItem removes one line item
func (h *Handler) RemoveCartItem(c *gin.Context) {
	var req itemKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	h.withCart(c, http.StatusOK, func(state *domain.ShopperState) (domain.CartView, error) {
		return h.carts.RemoveFromCart(state, req.key())
	})
}

// ClearCart empties the cart
func (h *Handler) ClearCart(c *gin.Context) {
	h.withCart(c, http.StatusOK, func(state *domain.ShopperState) (domain.CartView, error) {
		return h.carts.ClearCart(state)
	})
}

type promoRequest struct {
	Code string `json:"code"`
}

// ApplyPromoCode checks a promo code; every code is currently rejected
func (h *Handler) ApplyPromoCode(c *gin.Context) {
	var req promoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	if err := h.carts.ApplyPromoCode(c.Request.Context(), req.Code); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applied": true})
}

// Checkout validates the cart and returns the totals to pay
func (h *Handler) Checkout(c *gin.Context) {
	var summary *domain.CheckoutSummary
	err := sessionFrom(c).Do(func(state *domain.ShopperState) error {
		var err error
		summary, err = h.carts.Checkout(state)
		return err
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetWishlist returns the session's saved products
func (h *Handler) GetWishlist(c *gin.Context) {
	h.withWishlist(c, func(state *domain.ShopperState) (domain.WishlistView, error) {
		return h.wishlists.View(state), nil
	})
}

type wishlistRequest struct {
	ProductID int `json:"productId" binding:"required,gt=0"`
}

// AddWishlistItem saves a product to the wishlist
func (h *Handler) AddWishlistItem(c *gin.Context) {
	var req wishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	ctx := c.Request.Context()
	h.withWishlist(c, func(state *domain.ShopperState) (domain.WishlistView, error) {
		return h.wishlists.Add(ctx, state, req.ProductID)
	})
}

// RemoveWishlistItem drops a product from the wishlist
func (h *Handler) RemoveWishlistItem(c *gin.Context) {
	var req wishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	h.withWishlist(c, func(state *domain.ShopperState) (domain.WishlistView, error) {
		return h.wishlists.Remove(state, req.ProductID), nil
	})
}

func (h *Handler) withWishlist(c *gin.Context, fn func(state *domain.ShopperState) (domain.WishlistView, error)) {
	var view domain.WishlistView
	err := sessionFrom(c).Do(func(state *domain.ShopperState) error {
		var err error
		view, err = fn(state)
		return err
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// withCart runs fn under the session lock and writes the resulting cart view
func (h *Handler) withCart(c *gin.Context, status int, fn func(state *domain.ShopperState) (domain.CartView, error)) {
	var view domain.CartView
	err := sessionFrom(c).Do(func(state *domain.ShopperState) error {
		var err error
		view, err = fn(state)
		return err
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(status, view)
}

// respondError maps domain errors to HTTP statuses
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrLoginRequired):
		status = http.StatusUnauthorized
	case errors.Is(err, domain.ErrProductNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrEmptyCart), errors.Is(err, domain.ErrInvalidPromoCode):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrRateLimited):
		status = http.StatusTooManyRequests
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		status = http.StatusRequestTimeout
	}

	_ = c.Error(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}
	c.JSON(status, gin.H{"error": message})
}

func respondValidationError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   domain.ErrInvalidRequest.Error(),
		"details": err.Error(),
	})
}
