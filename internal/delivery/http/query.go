package http

import (
	"github.com/elegance/storefront/internal/domain"
	"github.com/elegance/storefront/internal/usecase"
	"github.com/gin-gonic/gin"
)

// criteriaFromQuery applies query parameters on top of the listing defaults.
// Repeated parameters select several values, e.g. ?color=%23000000&color=%23ffffff.
func criteriaFromQuery(c *gin.Context, defaults usecase.ListingDefaults) (domain.FilterCriteria, error) {
	return defaults.Build(usecase.CriteriaInput{
		Listing:    c.Query("listing"),
		Categories: c.QueryArray("category"),
		Colors:     c.QueryArray("color"),
		Sizes:      c.QueryArray("size"),
		Discounts:  c.QueryArray("discount"),
		MinPrice:   c.Query("minPrice"),
		MaxPrice:   c.Query("maxPrice"),
		Sort:       c.Query("sort"),
	})
}
