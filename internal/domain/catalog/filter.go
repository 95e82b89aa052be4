// internal/domain/catalog/filter.go
package catalog

import (
	"errors"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ErrInvalidPriceRange is returned by Query when the price range minimum
// exceeds the maximum.
var ErrInvalidPriceRange = errors.New("price range minimum exceeds maximum")

// SortMode selects one of the four total orders Query can apply.
type SortMode string

const (
	SortNameAsc   SortMode = "name_asc"
	SortNameDesc  SortMode = "name_desc"
	SortPriceAsc  SortMode = "price_asc"
	SortPriceDesc SortMode = "price_desc"
)

// PriceRange is an inclusive [Min, Max] interval over a product's
// representative (minimum) unit price.
type PriceRange struct {
	Min int64 `json:"min" form:"min_price"`
	Max int64 `json:"max" form:"max_price"`
}

// FilterState carries one catalog query's parameters. It is a plain value:
// build a fresh one per query, never reuse or version it.
type FilterState struct {
	Category string   `json:"category" form:"category"`
	Search   string   `json:"search" form:"search"`
	Sort     SortMode `json:"sort" form:"sort"`
	Price    PriceRange
	Statuses []string `json:"statuses" form:"statuses"`
}

// DefaultFilter returns the neutral filter state for a product list:
// every dimension at its non-filtering default.
func DefaultFilter(products []Product) FilterState {
	return FilterState{
		Category: CategoryAll,
		Sort:     SortNameAsc,
		Price:    PriceRange{Min: 0, Max: MaxUnitPrice(products)},
	}
}

// Result is the outcome of one catalog query.
type Result struct {
	Products          []Product `json:"products"`
	ActiveFilterCount int       `json:"active_filter_count"`
}

// Query filters and sorts the product list according to the filter state.
// It is a pure function: it never mutates its inputs and identical inputs
// produce identical, deterministically ordered output.
//
// A zero-valued Price.Max is treated as "unbounded", so a zero FilterState
// behaves like DefaultFilter apart from the category sentinel.
func Query(products []Product, f FilterState) (*Result, error) {
	maxPrice := MaxUnitPrice(products)

	min, max := f.Price.Min, f.Price.Max
	if max == 0 {
		max = maxPrice
	}
	if min > max {
		return nil, ErrInvalidPriceRange
	}

	filtered := make([]Product, 0, len(products))
	query := strings.ToLower(f.Search)

	for _, p := range products {
		if f.Category != "" && f.Category != CategoryAll && p.Category != f.Category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Code), query) {
			continue
		}
		if len(f.Statuses) > 0 && !containsString(f.Statuses, p.ApprovalStatus) {
			continue
		}
		// The range filter ranks a product by its cheapest variant while
		// the price sorts below use the first listed variant. The mismatch
		// is inherited storefront behavior; keep both rules as they are.
		if rep := p.MinUnitPrice(); rep < min || rep > max {
			continue
		}
		filtered = append(filtered, p)
	}

	sortProducts(filtered, f.Sort)

	return &Result{
		Products:          filtered,
		ActiveFilterCount: activeFilterCount(f, min, max, maxPrice),
	}, nil
}

// sortProducts applies the requested sort mode in place. The sort is stable,
// so ties keep the original dataset order. An unrecognized mode leaves the
// dataset order untouched, matching the storefront's behavior.
func sortProducts(products []Product, mode SortMode) {
	switch mode {
	case SortNameAsc, "":
		c := collate.New(language.Indonesian)
		sort.SliceStable(products, func(i, j int) bool {
			return c.CompareString(products[i].Name, products[j].Name) < 0
		})
	case SortNameDesc:
		c := collate.New(language.Indonesian)
		sort.SliceStable(products, func(i, j int) bool {
			return c.CompareString(products[j].Name, products[i].Name) < 0
		})
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].FirstUnitPrice() < products[j].FirstUnitPrice()
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[j].FirstUnitPrice() < products[i].FirstUnitPrice()
		})
	}
}

// activeFilterCount counts the non-default filter dimensions: one for a
// concrete category, one per selected approval status, and one for a
// narrowed price range. The free-text search never counts.
func activeFilterCount(f FilterState, min, max, maxPrice int64) int {
	count := 0
	if f.Category != "" && f.Category != CategoryAll {
		count++
	}
	count += len(f.Statuses)
	if min > 0 || max < maxPrice {
		count++
	}
	return count
}

func containsString(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}
