package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/elegance/storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestListCommand(t *testing.T) {
	out, err := run(t, "list", "--json", "--category", "Men", "--category", "Women", "--sort", "price-asc")
	require.NoError(t, err)

	var products []domain.Product
	require.NoError(t, json.Unmarshal([]byte(out), &products))
	require.Len(t, products, 10)
	assert.Equal(t, 1, products[0].ID)
	assert.Equal(t, 9, products[len(products)-1].ID)
}

func TestListCommandTable(t *testing.T) {
	out, err := run(t, "list", "--listing", "sale", "--discount", "60-100")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.Contains(t, lines[1], "Linen Button-Down Shirt")
}

func TestListCommandRejectsBadInput(t *testing.T) {
	for _, args := range [][]string{
		{"list", "--listing", "clearance"},
		{"list", "--discount", "lots"},
		{"list", "--min-price", "cheap"},
		{"list", "--min-price=-5"},
		{"list", "--max-price=-0.01"},
		{"list", "--sort", "popular"},
	} {
		_, err := run(t, args...)
		assert.ErrorIs(t, err, domain.ErrInvalidRequest, args)
	}
}

func TestShowCommand(t *testing.T) {
	out, err := run(t, "show", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "Aviator Sunglasses")
	assert.Contains(t, out, "129.99")

	_, err = run(t, "show", "999")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	_, err = run(t, "show", "seven")
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestSaleTabsCommand(t *testing.T) {
	out, err := run(t, "sale-tabs")
	require.NoError(t, err)
	assert.Contains(t, out, "All sale (14)")
	assert.Contains(t, out, "Up to 30% off (6)")
	assert.Contains(t, out, "Up to 50% off (4)")
	assert.Contains(t, out, "Over 50% off (4)")
}
