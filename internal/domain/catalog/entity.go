// internal/domain/catalog/entity.go
package catalog

// Category values used by the storefront catalog. CategoryAll is the
// sentinel that disables category filtering.
const (
	CategoryAll       = "Semua"
	CategorySauce     = "Sauce"
	CategorySeasoning = "Bumbu & Seasoning"
	CategorySambal    = "Sambal & Saus Pedas"
)

// Approval status values for the food-production permit of a product.
const (
	StatusPIRT       = "P-IRT"
	StatusInProgress = "SEDANG PROSES"
)

// Categories lists the selectable categories including the sentinel.
func Categories() []string {
	return []string{CategoryAll, CategorySauce, CategorySeasoning, CategorySambal}
}

// Variant is a purchasable packaging option of a Product. Prices are in
// rupiah (smallest currency unit, no decimals). PackLabel is unique within
// its parent product; cart identity is the pair (product code, pack label).
type Variant struct {
	PackLabel   string `json:"pack_label"`
	UnitPrice   int64  `json:"unit_price"`
	CartonPrice int64  `json:"carton_price"`
}

// Product is a read-only catalog entry. The catalog is loaded once at
// startup and never mutated afterwards.
type Product struct {
	Code           string    `json:"code"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	ApprovalStatus string    `json:"approval_status"`
	Variants       []Variant `json:"variants"`
}

// MinUnitPrice returns the cheapest unit price across all variants. This is
// the representative price the range filter works with.
func (p Product) MinUnitPrice() int64 {
	if len(p.Variants) == 0 {
		return 0
	}
	min := p.Variants[0].UnitPrice
	for _, v := range p.Variants[1:] {
		if v.UnitPrice < min {
			min = v.UnitPrice
		}
	}
	return min
}

// FirstUnitPrice returns the first listed variant's unit price. The price
// sort modes order by this value, not by MinUnitPrice.
func (p Product) FirstUnitPrice() int64 {
	if len(p.Variants) == 0 {
		return 0
	}
	return p.Variants[0].UnitPrice
}

// Variant looks up a variant by its pack label.
func (p Product) Variant(packLabel string) (Variant, bool) {
	for _, v := range p.Variants {
		if v.PackLabel == packLabel {
			return v, true
		}
	}
	return Variant{}, false
}
