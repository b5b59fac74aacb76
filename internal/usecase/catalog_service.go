package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/elegance/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// sizeOrder ranks the apparel sizes the catalog uses; unknown sizes sort last
var sizeOrder = []string{"XS", "S", "M", "L", "XL", "XXL"}

// CatalogServiceConfig holds configuration for the catalog service
type CatalogServiceConfig struct {
	CacheTTL time.Duration
	MaxPrice decimal.Decimal
}

// CatalogService answers listing, search and product queries over the catalog
type CatalogService struct {
	catalog  domain.CatalogRepository
	cache    domain.CacheRepository
	defaults ListingDefaults
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewCatalogService creates a catalog service. cache may be nil to disable memoization.
func NewCatalogService(
	catalog domain.CatalogRepository,
	cache domain.CacheRepository,
	config CatalogServiceConfig,
	logger *zap.Logger,
) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}

	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 5 * time.Minute
	}

	return &CatalogService{
		catalog:  catalog,
		cache:    cache,
		defaults: NewListingDefaults(config.MaxPrice),
		cacheTTL: cacheTTL,
		logger:   logger.Named("catalog"),
	}
}

// Defaults exposes the initial criteria of each listing
func (s *CatalogService) Defaults() ListingDefaults {
	return s.defaults
}

// Source returns the unfiltered product list a listing page starts from
func (s *CatalogService) Source(ctx context.Context, listing domain.Listing) ([]domain.Product, error) {
	all, err := s.catalog.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	switch listing {
	case domain.ListingAll, "":
		return all, nil
	case domain.ListingNewArrivals:
		return slices.DeleteFunc(all, func(p domain.Product) bool { return !p.IsNew }), nil
	case domain.ListingSale:
		return slices.DeleteFunc(all, func(p domain.Product) bool { return p.Discount <= 0 }), nil
	}
	return nil, fmt.Errorf("%w: unknown listing %q", domain.ErrInvalidRequest, listing)
}

// ListProducts runs the filter engine over the listing named in criteria.
// Results are memoized per canonical criteria.
func (s *CatalogService) ListProducts(ctx context.Context, criteria domain.FilterCriteria) ([]domain.Product, error) {
	if criteria.Sort != "" && !criteria.Sort.Valid() {
		return nil, fmt.Errorf("%w: unknown sort %q", domain.ErrInvalidRequest, criteria.Sort)
	}

	cacheKey := "listing:" + criteria.CacheKey()
	if cached, ok := s.getFromCache(ctx, cacheKey); ok {
		return cached, nil
	}

	source, err := s.Source(ctx, criteria.Listing)
	if err != nil {
		return nil, err
	}

	result := Apply(source, criteria)
	s.logger.Debug("listing computed",
		zap.String("listing", string(criteria.Listing)),
		zap.Int("source", len(source)),
		zap.Int("result", len(result)),
	)

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, cloneProducts(result), s.cacheTTL); err != nil {
			s.logger.Warn("failed to cache listing", zap.String("key", cacheKey), zap.Error(err))
		}
	}

	return result, nil
}

// GetProduct returns one product by id
func (s *CatalogService) GetProduct(ctx context.Context, id int) (*domain.Product, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: product id must be positive", domain.ErrInvalidRequest)
	}
	return s.catalog.GetByID(ctx, id)
}

// ProductsByCategory returns the products whose category equals name, ignoring case
func (s *CatalogService) ProductsByCategory(ctx context.Context, name string) ([]domain.Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", domain.ErrInvalidRequest)
	}

	criteria := s.defaults.Criteria(domain.ListingAll)
	criteria.PriceRange = nil
	criteria.Categories = []string{name}
	return s.ListProducts(ctx, criteria)
}

// Search returns products whose name contains query, ignoring case.
// An empty query matches nothing.
func (s *CatalogService) Search(ctx context.Context, query string) ([]domain.Product, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return []domain.Product{}, nil
	}

	all, err := s.catalog.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return slices.DeleteFunc(all, func(p domain.Product) bool {
		return !strings.Contains(strings.ToLower(p.Name), query)
	}), nil
}

// SaleTabs groups sale products into up to 30%, 31-50% and over 50% off
func (s *CatalogService) SaleTabs(ctx context.Context) (*domain.SaleTabs, error) {
	sale, err := s.Source(ctx, domain.ListingSale)
	if err != nil {
		return nil, err
	}

	tabs := &domain.SaleTabs{
		All:    sale,
		UpTo30: []domain.Product{},
		UpTo50: []domain.Product{},
		Over50: []domain.Product{},
	}
	for _, p := range sale {
		switch {
		case p.Discount <= 30:
			tabs.UpTo30 = append(tabs.UpTo30, p)
		case p.Discount <= 50:
			tabs.UpTo50 = append(tabs.UpTo50, p)
		default:
			tabs.Over50 = append(tabs.Over50, p)
		}
	}
	return tabs, nil
}

// FilterMetadata lists the filter options present in a listing's source
func (s *CatalogService) FilterMetadata(ctx context.Context, listing domain.Listing) (*domain.FilterMetadata, error) {
	source, err := s.Source(ctx, listing)
	if err != nil {
		return nil, err
	}

	meta := &domain.FilterMetadata{
		Categories:     []string{},
		Colors:         []string{},
		Sizes:          []string{},
		PriceRange:     domain.PriceRange{Min: decimal.Zero, Max: s.defaults.MaxPrice},
		DiscountRanges: []domain.DiscountRange{},
		SortOptions:    sortOptions(listing),
	}

	for _, p := range source {
		if !slices.ContainsFunc(meta.Categories, func(c string) bool { return strings.EqualFold(c, p.Category) }) {
			meta.Categories = append(meta.Categories, p.Category)
		}
		for _, c := range p.Colors {
			if !slices.Contains(meta.Colors, c) {
				meta.Colors = append(meta.Colors, c)
			}
		}
		for _, size := range p.Sizes {
			if !slices.Contains(meta.Sizes, size) {
				meta.Sizes = append(meta.Sizes, size)
			}
		}
	}
	slices.SortStableFunc(meta.Sizes, func(a, b string) int {
		return sizeRank(a) - sizeRank(b)
	})

	if listing == domain.ListingSale {
		meta.DiscountRanges = slices.Clone(DiscountPresets)
	}
	return meta, nil
}

// PaymentMethods returns the stored cards
func (s *CatalogService) PaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	return s.catalog.PaymentMethods(ctx)
}

func (s *CatalogService) getFromCache(ctx context.Context, key string) ([]domain.Product, bool) {
	if s.cache == nil {
		return nil, false
	}
	value, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil, false
	}
	products, ok := value.([]domain.Product)
	if !ok {
		return nil, false
	}
	return cloneProducts(products), true
}

func sortOptions(listing domain.Listing) []domain.SortOption {
	if listing == domain.ListingSale {
		return []domain.SortOption{
			{Value: domain.SortDiscountDesc, Label: "Highest Discount"},
			{Value: domain.SortPriceAsc, Label: "Price: Low to High"},
			{Value: domain.SortPriceDesc, Label: "Price: High to Low"},
			{Value: domain.SortNameAsc, Label: "Name: A to Z"},
		}
	}
	return []domain.SortOption{
		{Value: domain.SortNewest, Label: "Newest First"},
		{Value: domain.SortPriceAsc, Label: "Price: Low to High"},
		{Value: domain.SortPriceDesc, Label: "Price: High to Low"},
		{Value: domain.SortNameAsc, Label: "Name: A to Z"},
		{Value: domain.SortNameDesc, Label: "Name: Z to A"},
	}
}

func sizeRank(size string) int {
	if idx := slices.Index(sizeOrder, size); idx >= 0 {
		return idx
	}
	return len(sizeOrder)
}

func cloneProducts(products []domain.Product) []domain.Product {
	out := make([]domain.Product, len(products))
	for i, p := range products {
		out[i] = p.Clone()
	}
	return out
}
