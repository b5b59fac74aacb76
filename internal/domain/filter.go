package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SortKey selects the ordering of a listing
type SortKey string

const (
	SortNewest       SortKey = "newest"
	SortPriceAsc     SortKey = "price-asc"
	SortPriceDesc    SortKey = "price-desc"
	SortNameAsc      SortKey = "name-asc"
	SortNameDesc     SortKey = "name-desc"
	SortDiscountDesc SortKey = "discount-desc"
)

// Valid reports whether k is one of the known sort keys
func (k SortKey) Valid() bool {
	switch k {
	case SortNewest, SortPriceAsc, SortPriceDesc, SortNameAsc, SortNameDesc, SortDiscountDesc:
		return true
	}
	return false
}

// Listing identifies which source list a listing page filters
type Listing string

const (
	ListingAll         Listing = "all"
	ListingNewArrivals Listing = "new-arrivals"
	ListingSale        Listing = "sale"
)

// ParseListing maps a query value to a Listing. Empty means all.
func ParseListing(s string) (Listing, error) {
	switch Listing(s) {
	case "", ListingAll:
		return ListingAll, nil
	case ListingNewArrivals, ListingSale:
		return Listing(s), nil
	}
	return "", fmt.Errorf("%w: unknown listing %q", ErrInvalidRequest, s)
}

// PriceRange is an inclusive price interval
type PriceRange struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}

// Contains reports whether price lies in [Min, Max]
func (r PriceRange) Contains(price decimal.Decimal) bool {
	return price.GreaterThanOrEqual(r.Min) && price.LessThanOrEqual(r.Max)
}

// DiscountRange is an inclusive integer-percentage interval
type DiscountRange struct {
	Label string `json:"label,omitempty"`
	Min   int    `json:"min"`
	Max   int    `json:"max"`
}

// Contains reports whether discount lies in [Min, Max]
func (r DiscountRange) Contains(discount int) bool {
	return discount >= r.Min && discount <= r.Max
}

// Same compares ranges by bounds only; labels are presentation.
func (r DiscountRange) Same(other DiscountRange) bool {
	return r.Min == other.Min && r.Max == other.Max
}

// FilterCriteria is the per-page filter and sort state.
// A nil PriceRange places no price restriction.
type FilterCriteria struct {
	Listing        Listing         `json:"listing"`
	Categories     []string        `json:"categories"`
	PriceRange     *PriceRange     `json:"priceRange,omitempty"`
	Colors         []string        `json:"colors"`
	Sizes          []string        `json:"sizes"`
	DiscountRanges []DiscountRange `json:"discountRanges"`
	Sort           SortKey         `json:"sort"`
}

// FilterKind names one removable filter group
type FilterKind string

const (
	FilterCategory FilterKind = "category"
	FilterColor    FilterKind = "color"
	FilterSize     FilterKind = "size"
	FilterDiscount FilterKind = "discount"
	FilterPrice    FilterKind = "price"
)

// FilterMetadata describes the options a listing page can offer
type FilterMetadata struct {
	Categories     []string        `json:"categories"`
	Colors         []string        `json:"colors"`
	Sizes          []string        `json:"sizes"`
	PriceRange     PriceRange      `json:"priceRange"`
	DiscountRanges []DiscountRange `json:"discountRanges"`
	SortOptions    []SortOption    `json:"sortOptions"`
}

// SortOption pairs a sort key with its display label
type SortOption struct {
	Value SortKey `json:"value"`
	Label string  `json:"label"`
}

// SaleTabs groups sale products by discount depth
type SaleTabs struct {
	All    []Product `json:"all"`
	UpTo30 []Product `json:"upTo30"`
	UpTo50 []Product `json:"upTo50"`
	Over50 []Product `json:"over50"`
}
