// Package catalog serves the storefront's static product catalog.
package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"slices"

	"github.com/elegance/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed products.yaml
var defaultProducts []byte

// productRecord is the on-disk shape of a catalog entry.
// Prices are quoted strings so they decode without float rounding.
type productRecord struct {
	ID          int      `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Category    string   `yaml:"category"`
	Price       string   `yaml:"price"`
	Discount    int      `yaml:"discount"`
	Colors      []string `yaml:"colors"`
	Sizes       []string `yaml:"sizes"`
	IsNew       bool     `yaml:"isNew"`
	Rating      float64  `yaml:"rating"`
	Reviews     int      `yaml:"reviews"`
	Image       string   `yaml:"image"`
}

type catalogFile struct {
	Products []productRecord `yaml:"products"`
}

// StaticCatalog is an immutable, in-memory product catalog
type StaticCatalog struct {
	products       []domain.Product
	byID           map[int]int
	paymentMethods []domain.PaymentMethod
}

// NewStaticCatalog loads the embedded catalog
func NewStaticCatalog() (*StaticCatalog, error) {
	return Load(defaultProducts)
}

// Load decodes a YAML catalog. Product ids must be unique, prices
// non-negative and discounts within [0,100].
func Load(data []byte) (*StaticCatalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	c := &StaticCatalog{
		products:       make([]domain.Product, 0, len(file.Products)),
		byID:           make(map[int]int, len(file.Products)),
		paymentMethods: mockPaymentMethods(),
	}

	for _, rec := range file.Products {
		product, err := rec.toProduct()
		if err != nil {
			return nil, err
		}
		if _, exists := c.byID[product.ID]; exists {
			return nil, fmt.Errorf("%w: %d", domain.ErrDuplicateProductID, product.ID)
		}
		c.byID[product.ID] = len(c.products)
		c.products = append(c.products, product)
	}

	return c, nil
}

func (r productRecord) toProduct() (domain.Product, error) {
	price, err := decimal.NewFromString(r.Price)
	if err != nil {
		return domain.Product{}, fmt.Errorf("product %d: invalid price %q: %w", r.ID, r.Price, err)
	}
	if price.IsNegative() {
		return domain.Product{}, fmt.Errorf("product %d: negative price %s", r.ID, price)
	}
	if r.Discount < 0 || r.Discount > 100 {
		return domain.Product{}, fmt.Errorf("product %d: discount %d outside 0-100", r.ID, r.Discount)
	}

	return domain.Product{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Price:       price,
		Discount:    r.Discount,
		Colors:      slices.Clone(r.Colors),
		Sizes:       slices.Clone(r.Sizes),
		IsNew:       r.IsNew,
		Rating:      r.Rating,
		Reviews:     r.Reviews,
		Image:       r.Image,
	}, nil
}

// All returns copies of every product in catalog order
func (c *StaticCatalog) All(ctx context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(c.products))
	for i, p := range c.products {
		out[i] = p.Clone()
	}
	return out, nil
}

// GetByID returns a copy of one product
func (c *StaticCatalog) GetByID(ctx context.Context, id int) (*domain.Product, error) {
	idx, ok := c.byID[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	product := c.products[idx].Clone()
	return &product, nil
}

// PaymentMethods returns the stored cards shown at checkout
func (c *StaticCatalog) PaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	return slices.Clone(c.paymentMethods), nil
}

// Len is the number of products in the catalog
func (c *StaticCatalog) Len() int {
	return len(c.products)
}

func mockPaymentMethods() []domain.PaymentMethod {
	return []domain.PaymentMethod{
		{
			ID:          "1",
			Type:        "Visa",
			Last4:       "4242",
			ExpiryMonth: "12",
			ExpiryYear:  "2025",
			IsDefault:   true,
			Icon:        "fa-brands fa-cc-visa",
		},
		{
			ID:          "2",
			Type:        "Mastercard",
			Last4:       "8888",
			ExpiryMonth: "06",
			ExpiryYear:  "2026",
			IsDefault:   false,
			Icon:        "fa-brands fa-cc-mastercard",
		},
	}
}
