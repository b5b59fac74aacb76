package usecase

import (
	"fmt"

	"github.com/elegance/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

// DiscountPresets are the discount ranges offered on the sale page
var DiscountPresets = []domain.DiscountRange{
	{Label: "Up to 20% off", Min: 1, Max: 20},
	{Label: "20% - 40% off", Min: 20, Max: 40},
	{Label: "40% - 60% off", Min: 40, Max: 60},
	{Label: "60% or more", Min: 60, Max: 100},
}

// ListingDefaults knows the initial criteria of each listing page
type ListingDefaults struct {
	MaxPrice decimal.Decimal
}

// NewListingDefaults falls back to a 200 price ceiling when maxPrice is not positive
func NewListingDefaults(maxPrice decimal.Decimal) ListingDefaults {
	if !maxPrice.IsPositive() {
		maxPrice = decimal.NewFromInt(200)
	}
	return ListingDefaults{MaxPrice: maxPrice}
}

// Criteria returns the criteria a listing page starts with
func (d ListingDefaults) Criteria(listing domain.Listing) domain.FilterCriteria {
	sort := domain.SortNewest
	if listing == domain.ListingSale {
		sort = domain.SortDiscountDesc
	}
	return domain.FilterCriteria{
		Listing:        listing,
		Categories:     []string{},
		PriceRange:     d.priceRange(),
		Colors:         []string{},
		Sizes:          []string{},
		DiscountRanges: []domain.DiscountRange{},
		Sort:           sort,
	}
}

// ClearAll resets every filter and the sort to the listing defaults
func (d ListingDefaults) ClearAll(c domain.FilterCriteria) domain.FilterCriteria {
	return d.Criteria(c.Listing)
}

// RemoveFilter drops a single selected value. Removing the price filter
// restores the default range; value is ignored for it.
func (d ListingDefaults) RemoveFilter(c domain.FilterCriteria, kind domain.FilterKind, value string) (domain.FilterCriteria, error) {
	next := c.Clone()
	switch kind {
	case domain.FilterCategory:
		next.Categories = without(next.Categories, value)
	case domain.FilterColor:
		next.Colors = without(next.Colors, value)
	case domain.FilterSize:
		next.Sizes = without(next.Sizes, value)
	case domain.FilterDiscount:
		r, err := domain.ParseDiscountRange(value)
		if err != nil {
			return c, err
		}
		kept := next.DiscountRanges[:0]
		for _, existing := range next.DiscountRanges {
			if !existing.Same(r) {
				kept = append(kept, existing)
			}
		}
		next.DiscountRanges = kept
	case domain.FilterPrice:
		next.PriceRange = d.priceRange()
	default:
		return c, fmt.Errorf("%w: unknown filter %q", domain.ErrInvalidRequest, kind)
	}
	return next, nil
}

// ActiveFilterCount counts selected values plus one for a narrowed price range.
// The sort key is not a filter.
func (d ListingDefaults) ActiveFilterCount(c domain.FilterCriteria) int {
	count := len(c.Categories) + len(c.Colors) + len(c.Sizes) + len(c.DiscountRanges)
	if r := c.PriceRange; r != nil && (r.Min.IsPositive() || r.Max.LessThan(d.MaxPrice)) {
		count++
	}
	return count
}

func (d ListingDefaults) priceRange() *domain.PriceRange {
	return &domain.PriceRange{Min: decimal.Zero, Max: d.MaxPrice}
}

func without(values []string, drop string) []string {
	kept := values[:0]
	for _, v := range values {
		if v != drop {
			kept = append(kept, v)
		}
	}
	return kept
}
