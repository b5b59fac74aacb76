package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterCriteriaToggles(t *testing.T) {
	base := FilterCriteria{Categories: []string{"Men"}}

	added := base.ToggleCategory("Women")
	assert.Equal(t, []string{"Men", "Women"}, added.Categories)
	assert.Equal(t, []string{"Men"}, base.Categories, "toggle must not modify the receiver")

	removed := added.ToggleCategory("Men")
	assert.Equal(t, []string{"Women"}, removed.Categories)
	assert.Equal(t, []string{"Men", "Women"}, added.Categories)

	colors := base.ToggleColor("#000000").ToggleColor("#FFFFFF").ToggleColor("#000000")
	assert.Equal(t, []string{"#FFFFFF"}, colors.Colors)

	sizes := base.ToggleSize("M").ToggleSize("M")
	assert.Empty(t, sizes.Sizes)
}

func TestFilterCriteriaToggleDiscountRange(t *testing.T) {
	labelled := DiscountRange{Label: "Up to 20% off", Min: 1, Max: 20}

	c := FilterCriteria{}.ToggleDiscountRange(labelled)
	require.Len(t, c.DiscountRanges, 1)

	// Same bounds without a label still toggles the selection off
	c = c.ToggleDiscountRange(DiscountRange{Min: 1, Max: 20})
	assert.Empty(t, c.DiscountRanges)
}

func TestFilterCriteriaSetPriceRange(t *testing.T) {
	c := FilterCriteria{}.SetPriceRange(decimal.NewFromInt(80), decimal.NewFromInt(20))
	require.NotNil(t, c.PriceRange)

	assert.True(t, c.PriceRange.Min.Equal(decimal.NewFromInt(20)))
	assert.True(t, c.PriceRange.Max.Equal(decimal.NewFromInt(80)))
	assert.True(t, c.PriceRange.Contains(decimal.NewFromInt(20)))
	assert.True(t, c.PriceRange.Contains(decimal.NewFromInt(80)))
	assert.False(t, c.PriceRange.Contains(decimal.RequireFromString("80.01")))
}

func TestFilterCriteriaCacheKey(t *testing.T) {
	a := FilterCriteria{
		Listing:        ListingSale,
		Categories:     []string{"Men", "women"},
		Colors:         []string{"#FFFFFF", "#000000"},
		DiscountRanges: []DiscountRange{{Min: 40, Max: 60}, {Label: "Up to 20% off", Min: 1, Max: 20}},
		Sort:           SortPriceAsc,
	}
	b := FilterCriteria{
		Listing:        ListingSale,
		Categories:     []string{"Women", "Men"},
		Colors:         []string{"#000000", "#FFFFFF"},
		DiscountRanges: []DiscountRange{{Min: 1, Max: 20}, {Min: 40, Max: 60}},
		Sort:           SortPriceAsc,
	}
	assert.Equal(t, a.CacheKey(), b.CacheKey())

	assert.NotEqual(t, a.CacheKey(), a.SetSort(SortPriceDesc).CacheKey())
	assert.NotEqual(t, a.CacheKey(), a.ToggleSize("M").CacheKey())

	other := a
	other.Listing = ListingAll
	assert.NotEqual(t, a.CacheKey(), other.CacheKey())
}

func TestParseDiscountRange(t *testing.T) {
	tests := []struct {
		input   string
		want    DiscountRange
		wantErr bool
	}{
		{"1-20", DiscountRange{Min: 1, Max: 20}, false},
		{" 60 - 100 ", DiscountRange{Min: 60, Max: 100}, false},
		{"20", DiscountRange{}, true},
		{"a-b", DiscountRange{}, true},
		{"40-20", DiscountRange{}, true},
		{"0-120", DiscountRange{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDiscountRange(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRequest)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, mustParse(t, got.String()))
		})
	}
}

func mustParse(t *testing.T, s string) DiscountRange {
	t.Helper()
	r, err := ParseDiscountRange(s)
	require.NoError(t, err)
	return r
}

func TestParseListing(t *testing.T) {
	for input, want := range map[string]Listing{
		"":             ListingAll,
		"all":          ListingAll,
		"new-arrivals": ListingNewArrivals,
		"sale":         ListingSale,
	} {
		got, err := ParseListing(input)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseListing("clearance")
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestProductVariantMatching(t *testing.T) {
	p := Product{Colors: []string{"#000000"}, Sizes: []string{"S", "M"}}

	assert.True(t, p.HasAnyColor([]string{"#FFFFFF", "#000000"}))
	assert.False(t, p.HasAnyColor([]string{"#FFFFFF"}))
	assert.True(t, p.HasAnySize([]string{"M"}))
	assert.False(t, Product{}.HasAnySize([]string{"M"}))

	clone := p.Clone()
	clone.Colors[0] = "#FFFFFF"
	assert.Equal(t, "#000000", p.Colors[0])
}

func TestCartLineItem(t *testing.T) {
	item := CartLineItem{
		Product:       Product{ID: 7, Price: decimal.RequireFromString("9.99")},
		SelectedColor: "#000000",
		SelectedSize:  "M",
		Quantity:      3,
	}

	assert.Equal(t, CartKey{ProductID: 7, SelectedColor: "#000000", SelectedSize: "M"}, item.Key())
	assert.True(t, item.LineTotal().Equal(decimal.RequireFromString("29.97")))
}

func TestFilterCriteriaPriceRangeIsNotShared(t *testing.T) {
	a := FilterCriteria{}.SetPriceRange(decimal.NewFromInt(10), decimal.NewFromInt(20))
	b := a.Clone()
	b.PriceRange.Max = decimal.NewFromInt(99)

	assert.True(t, a.PriceRange.Max.Equal(decimal.NewFromInt(20)))
	assert.NotEqual(t, FilterCriteria{}.CacheKey(), FilterCriteria{}.SetPriceRange(decimal.Zero, decimal.Zero).CacheKey())
}
