package domain

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Product is a read-only catalog entry
type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Discount    int             `json:"discount"` // percentage 0-100
	Colors      []string        `json:"colors"`   // hex tokens, e.g. "#000000"
	Sizes       []string        `json:"sizes,omitempty"`
	IsNew       bool            `json:"isNew"`
	Rating      float64         `json:"rating"`
	Reviews     int             `json:"reviews"`
	Image       string          `json:"image,omitempty"`
}

// Clone returns a deep copy so callers can never alias catalog slices
func (p Product) Clone() Product {
	p.Colors = slices.Clone(p.Colors)
	p.Sizes = slices.Clone(p.Sizes)
	return p
}

// HasAnyColor reports whether any of the product colors is in the selected set
func (p Product) HasAnyColor(selected []string) bool {
	for _, c := range p.Colors {
		if slices.Contains(selected, c) {
			return true
		}
	}
	return false
}

// HasAnySize reports whether any of the product sizes is in the selected set.
// Products without sizes never match.
func (p Product) HasAnySize(selected []string) bool {
	for _, s := range p.Sizes {
		if slices.Contains(selected, s) {
			return true
		}
	}
	return false
}

// PaymentMethod is a stored card shown on the checkout page
type PaymentMethod struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Last4       string `json:"last4"`
	ExpiryMonth string `json:"expiryMonth"`
	ExpiryYear  string `json:"expiryYear"`
	IsDefault   bool   `json:"isDefault"`
	Icon        string `json:"icon"`
}

// User is the simulated signed-in shopper
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
