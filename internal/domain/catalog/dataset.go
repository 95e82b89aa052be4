// internal/domain/catalog/dataset.go
package catalog

import "fmt"

// products is the static storefront catalog. Order matters: it is the
// tie-break order for every sort mode and the display order for the
// default query.
var products = []Product{
	{
		Code: "ALC-001", Name: "Saus Tomat Premium",
		Category: CategorySauce, ApprovalStatus: StatusPIRT,
		Variants: []Variant{
			{PackLabel: "250ml Botol", UnitPrice: 15000, CartonPrice: 165000},
			{PackLabel: "500ml Botol", UnitPrice: 27000, CartonPrice: 297000},
			{PackLabel: "1L Jerigen", UnitPrice: 48000, CartonPrice: 528000},
		},
	},
	{
		Code: "ALC-002", Name: "Saus Sambal Extra Pedas",
		Category: CategorySambal, ApprovalStatus: StatusPIRT,
		Variants: []Variant{
			{PackLabel: "250ml Botol", UnitPrice: 18000, CartonPrice: 198000},
			{PackLabel: "500ml Botol", UnitPrice: 32000, CartonPrice: 352000},
		},
	},
	{
		Code: "ALC-003", Name: "Bumbu Nasi Goreng Spesial",
		Category: CategorySeasoning, ApprovalStatus: StatusPIRT,
		Variants: []Variant{
			{PackLabel: "50g Sachet", UnitPrice: 5000, CartonPrice: 110000},
			{PackLabel: "250g Pouch", UnitPrice: 22000, CartonPrice: 242000},
			{PackLabel: "1kg Bucket", UnitPrice: 78000, CartonPrice: 858000},
		},
	},
	{
		Code: "ALC-004", Name: "Saus Tiram Premium",
		Category: CategorySauce, ApprovalStatus: StatusPIRT,
		Variants: []Variant{
			{PackLabel: "300ml Botol", UnitPrice: 25000, CartonPrice: 275000},
			{PackLabel: "600ml Botol", UnitPrice: 45000, CartonPrice: 495000},
		},
	},
	{
		Code: "ALC-005", Name: "Sambal Matah Ready",
		Category: CategorySambal, ApprovalStatus: StatusInProgress,
		Variants: []Variant{
			{PackLabel: "200g Jar", UnitPrice: 28000, CartonPrice: 308000},
			{PackLabel: "500g Jar", UnitPrice: 62000, CartonPrice: 682000},
		},
	},
	{
		Code: "ALC-006", Name: "Bumbu Rendang Instan",
		Category: CategorySeasoning, ApprovalStatus: StatusPIRT,
		Variants: []Variant{
			{PackLabel: "100g Sachet", UnitPrice: 12000, CartonPrice: 132000},
			{PackLabel: "500g Pouch", UnitPrice: 52000, CartonPrice: 572000},
		},
	},
	{
		Code: "ALC-007", Name: "Saus BBQ Smoky",
		Category: CategorySauce, ApprovalStatus: StatusPIRT,
		Variants: []Variant{
			{PackLabel: "250ml Botol", UnitPrice: 20000, CartonPrice: 220000},
			{PackLabel: "500ml Botol", UnitPrice: 36000, CartonPrice: 396000},
			{PackLabel: "1L Jerigen", UnitPrice: 65000, CartonPrice: 715000},
		},
	},
	{
		Code: "ALC-008", Name: "Sambal Bajak Tradisional",
		Category: CategorySambal, ApprovalStatus: StatusPIRT,
		Variants: []Variant{
			{PackLabel: "200g Jar", UnitPrice: 24000, CartonPrice: 264000},
			{PackLabel: "500g Jar", UnitPrice: 55000, CartonPrice: 605000},
		},
	},
	{
		Code: "ALC-009", Name: "Bumbu Gulai Padang",
		Category: CategorySeasoning, ApprovalStatus: StatusPIRT,
		Variants: []Variant{
			{PackLabel: "100g Sachet", UnitPrice: 14000, CartonPrice: 154000},
			{PackLabel: "500g Pouch", UnitPrice: 62000, CartonPrice: 682000},
		},
	},
	{
		Code: "ALC-010", Name: "Saus Teriyaki Jepang",
		Category: CategorySauce, ApprovalStatus: StatusInProgress,
		Variants: []Variant{
			{PackLabel: "300ml Botol", UnitPrice: 28000, CartonPrice: 308000},
			{PackLabel: "600ml Botol", UnitPrice: 50000, CartonPrice: 550000},
		},
	},
	{
		Code: "ALC-011", Name: "Bumbu Soto Ayam",
		Category: CategorySeasoning, ApprovalStatus: StatusPIRT,
		Variants: []Variant{
			{PackLabel: "50g Sachet", UnitPrice: 6000, CartonPrice: 132000},
			{PackLabel: "250g Pouch", UnitPrice: 26000, CartonPrice: 286000},
		},
	},
	{
		Code: "ALC-012", Name: "Saus Cabai Manis",
		Category: CategorySambal, ApprovalStatus: StatusPIRT,
		Variants: []Variant{
			{PackLabel: "250ml Botol", UnitPrice: 16000, CartonPrice: 176000},
			{PackLabel: "500ml Botol", UnitPrice: 29000, CartonPrice: 319000},
		},
	},
}

// Products returns the static catalog. Callers must treat the returned
// slice as read-only.
func Products() []Product {
	return products
}

// FindProduct looks up a catalog entry by code.
func FindProduct(code string) (Product, bool) {
	for _, p := range products {
		if p.Code == code {
			return p, true
		}
	}
	return Product{}, false
}

// MaxUnitPrice returns the highest unit price found across all variants of
// all products. It anchors the default upper bound of the price range
// filter.
func MaxUnitPrice(products []Product) int64 {
	var max int64
	for _, p := range products {
		for _, v := range p.Variants {
			if v.UnitPrice > max {
				max = v.UnitPrice
			}
		}
	}
	return max
}

// ValidateDataset checks the structural invariants of a product list at the
// loading boundary so the query engine and cart can assume well-formed
// records: unique codes, non-empty variant lists, unique pack labels per
// product and positive prices.
func ValidateDataset(products []Product) error {
	codes := make(map[string]bool, len(products))
	for _, p := range products {
		if p.Code == "" {
			return fmt.Errorf("product %q: empty code", p.Name)
		}
		if codes[p.Code] {
			return fmt.Errorf("product %s: duplicate code", p.Code)
		}
		codes[p.Code] = true

		if len(p.Variants) == 0 {
			return fmt.Errorf("product %s: no variants", p.Code)
		}

		packs := make(map[string]bool, len(p.Variants))
		for _, v := range p.Variants {
			if v.PackLabel == "" {
				return fmt.Errorf("product %s: variant with empty pack label", p.Code)
			}
			if packs[v.PackLabel] {
				return fmt.Errorf("product %s: duplicate pack label %q", p.Code, v.PackLabel)
			}
			packs[v.PackLabel] = true

			if v.UnitPrice <= 0 {
				return fmt.Errorf("product %s variant %q: non-positive unit price %d", p.Code, v.PackLabel, v.UnitPrice)
			}
			if v.CartonPrice <= 0 {
				return fmt.Errorf("product %s variant %q: non-positive carton price %d", p.Code, v.PackLabel, v.CartonPrice)
			}
		}
	}
	return nil
}
