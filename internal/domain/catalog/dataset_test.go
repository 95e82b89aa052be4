// internal/domain/catalog/dataset_test.go
package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatasetIsWellFormed(t *testing.T) {
	require.NoError(t, ValidateDataset(Products()))
	assert.Len(t, Products(), 12)
}

func TestMaxUnitPrice(t *testing.T) {
	assert.Equal(t, int64(78000), MaxUnitPrice(Products()), "1kg Bucket of ALC-003 is the most expensive unit")
	assert.Equal(t, int64(0), MaxUnitPrice(nil))
}

func TestValidateDatasetRejections(t *testing.T) {
	valid := Product{
		Code: "X-1", Name: "X", Category: CategorySauce, ApprovalStatus: StatusPIRT,
		Variants: []Variant{{PackLabel: "Jar", UnitPrice: 1000, CartonPrice: 11000}},
	}

	tests := []struct {
		name    string
		mutate  func(*Product)
		dataset func(Product) []Product
	}{
		{"empty code", func(p *Product) { p.Code = "" }, nil},
		{"no variants", func(p *Product) { p.Variants = nil }, nil},
		{"empty pack label", func(p *Product) { p.Variants[0].PackLabel = "" }, nil},
		{"zero unit price", func(p *Product) { p.Variants[0].UnitPrice = 0 }, nil},
		{"negative carton price", func(p *Product) { p.Variants[0].CartonPrice = -1 }, nil},
		{"duplicate pack label", func(p *Product) {
			p.Variants = append(p.Variants, Variant{PackLabel: "Jar", UnitPrice: 2000, CartonPrice: 22000})
		}, nil},
		{"duplicate code", nil, func(p Product) []Product { return []Product{p, p} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			p.Variants = append([]Variant(nil), valid.Variants...)
			if tt.mutate != nil {
				tt.mutate(&p)
			}
			dataset := []Product{p}
			if tt.dataset != nil {
				dataset = tt.dataset(p)
			}
			assert.Error(t, ValidateDataset(dataset))
		})
	}
}

func TestFindProduct(t *testing.T) {
	p, ok := FindProduct("ALC-004")
	require.True(t, ok)
	assert.Equal(t, "Saus Tiram Premium", p.Name)

	_, ok = FindProduct("ALC-404")
	assert.False(t, ok)
}

func TestProductPriceHelpers(t *testing.T) {
	p, ok := FindProduct("ALC-003")
	require.True(t, ok)

	assert.Equal(t, int64(5000), p.MinUnitPrice())
	assert.Equal(t, int64(5000), p.FirstUnitPrice())

	v, ok := p.Variant("1kg Bucket")
	require.True(t, ok)
	assert.Equal(t, int64(78000), v.UnitPrice)

	_, ok = p.Variant("2kg Bucket")
	assert.False(t, ok)

	var empty Product
	assert.Equal(t, int64(0), empty.MinUnitPrice())
	assert.Equal(t, int64(0), empty.FirstUnitPrice())
}
