package domain

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Clone returns a copy that shares no slices with c
func (c FilterCriteria) Clone() FilterCriteria {
	c.Categories = slices.Clone(c.Categories)
	c.Colors = slices.Clone(c.Colors)
	c.Sizes = slices.Clone(c.Sizes)
	c.DiscountRanges = slices.Clone(c.DiscountRanges)
	if c.PriceRange != nil {
		r := *c.PriceRange
		c.PriceRange = &r
	}
	return c
}

// ToggleCategory adds category if absent, removes it if present
func (c FilterCriteria) ToggleCategory(category string) FilterCriteria {
	next := c.Clone()
	next.Categories = toggle(next.Categories, category)
	return next
}

// ToggleColor adds color if absent, removes it if present
func (c FilterCriteria) ToggleColor(color string) FilterCriteria {
	next := c.Clone()
	next.Colors = toggle(next.Colors, color)
	return next
}

// ToggleSize adds size if absent, removes it if present
func (c FilterCriteria) ToggleSize(size string) FilterCriteria {
	next := c.Clone()
	next.Sizes = toggle(next.Sizes, size)
	return next
}

// ToggleDiscountRange adds r if no range with the same bounds is selected, removes it otherwise
func (c FilterCriteria) ToggleDiscountRange(r DiscountRange) FilterCriteria {
	next := c.Clone()
	if idx := slices.IndexFunc(next.DiscountRanges, r.Same); idx >= 0 {
		next.DiscountRanges = slices.Delete(next.DiscountRanges, idx, idx+1)
		return next
	}
	next.DiscountRanges = append(next.DiscountRanges, r)
	return next
}

// SetPriceRange replaces the price interval, swapping inverted bounds
func (c FilterCriteria) SetPriceRange(lower, upper decimal.Decimal) FilterCriteria {
	next := c.Clone()
	if lower.GreaterThan(upper) {
		lower, upper = upper, lower
	}
	next.PriceRange = &PriceRange{Min: lower, Max: upper}
	return next
}

// SetSort replaces the sort key
func (c FilterCriteria) SetSort(key SortKey) FilterCriteria {
	next := c.Clone()
	next.Sort = key
	return next
}

// CacheKey renders the criteria canonically: selection order does not matter.
func (c FilterCriteria) CacheKey() string {
	var b strings.Builder
	b.WriteString(string(c.Listing))
	b.WriteString("|c=")
	b.WriteString(joinSorted(lowerAll(c.Categories)))
	b.WriteString("|p=")
	if c.PriceRange != nil {
		b.WriteString(c.PriceRange.Min.String())
		b.WriteString("-")
		b.WriteString(c.PriceRange.Max.String())
	} else {
		b.WriteString("any")
	}
	b.WriteString("|col=")
	b.WriteString(joinSorted(c.Colors))
	b.WriteString("|s=")
	b.WriteString(joinSorted(c.Sizes))
	b.WriteString("|d=")
	ranges := make([]string, 0, len(c.DiscountRanges))
	for _, r := range c.DiscountRanges {
		ranges = append(ranges, r.String())
	}
	b.WriteString(joinSorted(ranges))
	b.WriteString("|sort=")
	b.WriteString(string(c.Sort))
	return b.String()
}

// String renders the range as "min-max"
func (r DiscountRange) String() string {
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}

// ParseDiscountRange parses "min-max" into a range within [0,100]
func ParseDiscountRange(s string) (DiscountRange, error) {
	lo, hi, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return DiscountRange{}, fmt.Errorf("%w: discount range %q must be min-max", ErrInvalidRequest, s)
	}
	lower, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return DiscountRange{}, fmt.Errorf("%w: discount range %q: %v", ErrInvalidRequest, s, err)
	}
	upper, err := strconv.Atoi(strings.TrimSpace(hi))
	if err != nil {
		return DiscountRange{}, fmt.Errorf("%w: discount range %q: %v", ErrInvalidRequest, s, err)
	}
	if lower < 0 || upper > 100 || lower > upper {
		return DiscountRange{}, fmt.Errorf("%w: discount range %q out of bounds", ErrInvalidRequest, s)
	}
	return DiscountRange{Min: lower, Max: upper}, nil
}

func toggle(set []string, value string) []string {
	if idx := slices.Index(set, value); idx >= 0 {
		return slices.Delete(set, idx, idx+1)
	}
	return append(set, value)
}

func lowerAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToLower(v)
	}
	return out
}

func joinSorted(values []string) string {
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)
	return strings.Join(sorted, ",")
}
