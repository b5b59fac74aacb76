package usecase

import (
	"fmt"
	"slices"
	"strings"

	"github.com/elegance/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

// CriteriaInput is a listing request in its raw text form, as it arrives
// from a query string or command-line flags. Empty fields keep the default.
type CriteriaInput struct {
	Listing    string
	Categories []string
	Colors     []string
	Sizes      []string
	Discounts  []string // "min-max"
	MinPrice   string
	MaxPrice   string
	Sort       string
}

// Build validates in and applies it on top of the listing defaults
func (d ListingDefaults) Build(in CriteriaInput) (domain.FilterCriteria, error) {
	listing, err := domain.ParseListing(in.Listing)
	if err != nil {
		return domain.FilterCriteria{}, err
	}
	c := d.Criteria(listing)

	for _, v := range in.Categories {
		if v = strings.TrimSpace(v); v != "" && !slices.Contains(c.Categories, v) {
			c = c.ToggleCategory(v)
		}
	}
	for _, v := range in.Colors {
		if v = strings.TrimSpace(v); v != "" && !slices.Contains(c.Colors, v) {
			c = c.ToggleColor(v)
		}
	}
	for _, v := range in.Sizes {
		if v = strings.TrimSpace(v); v != "" && !slices.Contains(c.Sizes, v) {
			c = c.ToggleSize(v)
		}
	}
	for _, raw := range in.Discounts {
		r, err := domain.ParseDiscountRange(raw)
		if err != nil {
			return domain.FilterCriteria{}, err
		}
		if !slices.ContainsFunc(c.DiscountRanges, r.Same) {
			c = c.ToggleDiscountRange(presetLabel(r))
		}
	}

	lower, upper := decimal.Zero, d.MaxPrice
	if in.MinPrice != "" {
		if lower, err = parsePrice("min price", in.MinPrice); err != nil {
			return domain.FilterCriteria{}, err
		}
	}
	if in.MaxPrice != "" {
		if upper, err = parsePrice("max price", in.MaxPrice); err != nil {
			return domain.FilterCriteria{}, err
		}
	}
	c = c.SetPriceRange(lower, upper)

	if in.Sort != "" {
		key := domain.SortKey(in.Sort)
		if !key.Valid() {
			return domain.FilterCriteria{}, fmt.Errorf("%w: unknown sort %q", domain.ErrInvalidRequest, in.Sort)
		}
		c = c.SetSort(key)
	}

	return c, nil
}

func parsePrice(name, raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s %q is not a number", domain.ErrInvalidRequest, name, raw)
	}
	if price.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: %s must not be negative", domain.ErrInvalidRequest, name)
	}
	return price, nil
}

// presetLabel attaches the display label when r matches a sale preset
func presetLabel(r domain.DiscountRange) domain.DiscountRange {
	if idx := slices.IndexFunc(DiscountPresets, r.Same); idx >= 0 {
		return DiscountPresets[idx]
	}
	return r
}
