package usecase

import (
	"cmp"
	"slices"
	"strings"

	"github.com/elegance/storefront/internal/domain"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Apply derives the visible product list from source and criteria.
//
// Filtering runs in a fixed order: category, price, color, size, discount.
// Empty selections and a nil price range do not restrict.
// The result is a fresh slice of product copies, sorted stably by
// criteria.Sort, so source is never mutated and equal inputs give equal
// outputs.
func Apply(source []domain.Product, criteria domain.FilterCriteria) []domain.Product {
	result := make([]domain.Product, 0, len(source))
	for _, product := range source {
		if matches(product, criteria) {
			result = append(result, product.Clone())
		}
	}

	sortProducts(result, criteria.Sort)
	return result
}

// matches applies every active filter to a single product
func matches(p domain.Product, c domain.FilterCriteria) bool {
	if len(c.Categories) > 0 && !matchesCategory(p.Category, c.Categories) {
		return false
	}
	if c.PriceRange != nil && !c.PriceRange.Contains(p.Price) {
		return false
	}
	if len(c.Colors) > 0 && !p.HasAnyColor(c.Colors) {
		return false
	}
	if len(c.Sizes) > 0 && !p.HasAnySize(c.Sizes) {
		return false
	}
	if len(c.DiscountRanges) > 0 && !matchesDiscount(p.Discount, c.DiscountRanges) {
		return false
	}
	return true
}

func matchesCategory(category string, selected []string) bool {
	for _, s := range selected {
		if strings.EqualFold(category, s) {
			return true
		}
	}
	return false
}

func matchesDiscount(discount int, ranges []domain.DiscountRange) bool {
	for _, r := range ranges {
		if r.Contains(discount) {
			return true
		}
	}
	return false
}

// sortProducts orders products in place. Every comparator is used with a
// stable sort so ties keep source order. Unknown keys keep source order.
func sortProducts(products []domain.Product, key domain.SortKey) {
	switch key {
	case domain.SortPriceAsc:
		slices.SortStableFunc(products, func(a, b domain.Product) int {
			return a.Price.Cmp(b.Price)
		})
	case domain.SortPriceDesc:
		slices.SortStableFunc(products, func(a, b domain.Product) int {
			return b.Price.Cmp(a.Price)
		})
	case domain.SortNameAsc:
		// Collators keep internal buffers and are not safe to share
		col := collate.New(language.English)
		slices.SortStableFunc(products, func(a, b domain.Product) int {
			return col.CompareString(a.Name, b.Name)
		})
	case domain.SortNameDesc:
		col := collate.New(language.English)
		slices.SortStableFunc(products, func(a, b domain.Product) int {
			return col.CompareString(b.Name, a.Name)
		})
	case domain.SortDiscountDesc:
		slices.SortStableFunc(products, func(a, b domain.Product) int {
			return cmp.Compare(b.Discount, a.Discount)
		})
	}
}
