package usecase

import (
	"context"
	"time"

	"github.com/elegance/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

// MockCacheRepository is a mock implementation of domain.CacheRepository
type MockCacheRepository struct {
	data      map[string]interface{}
	getError  error
	setError  error
	getCalled int
	setCalled int
}

func NewMockCacheRepository() *MockCacheRepository {
	return &MockCacheRepository{
		data: make(map[string]interface{}),
	}
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) (interface{}, error) {
	m.getCalled++
	if m.getError != nil {
		return nil, m.getError
	}
	if value, ok := m.data[key]; ok {
		return value, nil
	}
	return nil, domain.ErrCacheMiss
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	m.setCalled++
	if m.setError != nil {
		return m.setError
	}
	m.data[key] = value
	return nil
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	_, ok := m.data[key]
	return ok, nil
}

// MockCatalog is an in-memory domain.CatalogRepository
type MockCatalog struct {
	products []domain.Product
	allError error
	allCalls int
}

func NewMockCatalog(products ...domain.Product) *MockCatalog {
	return &MockCatalog{products: products}
}

func (m *MockCatalog) All(ctx context.Context) ([]domain.Product, error) {
	m.allCalls++
	if m.allError != nil {
		return nil, m.allError
	}
	out := make([]domain.Product, len(m.products))
	for i, p := range m.products {
		out[i] = p.Clone()
	}
	return out, nil
}

func (m *MockCatalog) GetByID(ctx context.Context, id int) (*domain.Product, error) {
	for _, p := range m.products {
		if p.ID == id {
			clone := p.Clone()
			return &clone, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (m *MockCatalog) PaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	return []domain.PaymentMethod{{ID: "1", Type: "Visa", Last4: "4242", IsDefault: true}}, nil
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// sampleProducts is a small catalog covering every filter dimension
func sampleProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Classic Tee", Category: "Men", Price: price("24.99"), Discount: 0, Colors: []string{"#FFFFFF", "#000000"}, Sizes: []string{"S", "M", "L"}, IsNew: true},
		{ID: 2, Name: "Floral Dress", Category: "Women", Price: price("59.99"), Discount: 20, Colors: []string{"#FFC0CB"}, Sizes: []string{"XS", "S"}, IsNew: true},
		{ID: 3, Name: "Crossbody Bag", Category: "Accessories", Price: price("89.99"), Discount: 15, Colors: []string{"#000000"}},
		{ID: 4, Name: "Denim Jacket", Category: "Kids", Price: price("39.99"), Discount: 0, Colors: []string{"#0000FF"}, Sizes: []string{"XS", "S"}, IsNew: true},
		{ID: 5, Name: "Chinos", Category: "Men", Price: price("49.99"), Discount: 30, Colors: []string{"#808080", "#000000"}, Sizes: []string{"M", "L", "XL"}},
		{ID: 6, Name: "silk blouse", Category: "Women", Price: price("79.99"), Discount: 45, Colors: []string{"#FFFFFF"}, Sizes: []string{"S", "M"}},
		{ID: 7, Name: "Aviators", Category: "Accessories", Price: price("129.99"), Discount: 60, Colors: []string{"#000000"}},
		{ID: 8, Name: "Rain Boots", Category: "Kids", Price: price("24.99"), Discount: 10, Colors: []string{"#FFFF00"}, Sizes: []string{"XS"}},
	}
}

func productIDs(products []domain.Product) []int {
	ids := make([]int, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids
}
