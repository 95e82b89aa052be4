// internal/domain/catalog/filter_test.go
package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func codes(products []Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Code
	}
	return out
}

// keepOrder leaves the dataset order untouched so filter assertions are not
// entangled with collation.
func keepOrder() SortMode { return SortMode("dataset") }

func TestQueryDefaultFilterReturnsEverything(t *testing.T) {
	f := DefaultFilter(Products())
	f.Sort = keepOrder()

	res, err := Query(Products(), f)
	require.NoError(t, err)

	assert.Len(t, res.Products, len(Products()))
	assert.Equal(t, 0, res.ActiveFilterCount)
	assert.Equal(t, codes(Products()), codes(res.Products))
}

func TestQueryCategoryFilter(t *testing.T) {
	f := DefaultFilter(Products())
	f.Category = CategorySauce
	f.Sort = keepOrder()

	res, err := Query(Products(), f)
	require.NoError(t, err)

	assert.Equal(t, []string{"ALC-001", "ALC-004", "ALC-007", "ALC-010"}, codes(res.Products))
	assert.Equal(t, 1, res.ActiveFilterCount)
}

func TestQuerySearchMatchesNameOrCode(t *testing.T) {
	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{"name substring", "sambal", []string{"ALC-002", "ALC-005", "ALC-008"}},
		{"case insensitive", "SAMBAL", []string{"ALC-002", "ALC-005", "ALC-008"}},
		{"code substring", "alc-011", []string{"ALC-011"}},
		{"matches either field", "007", []string{"ALC-007"}},
		{"no match", "durian", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := DefaultFilter(Products())
			f.Search = tt.search
			f.Sort = keepOrder()

			res, err := Query(Products(), f)
			require.NoError(t, err)
			if tt.want == nil {
				assert.Empty(t, res.Products)
			} else {
				assert.Equal(t, tt.want, codes(res.Products))
			}
			assert.Equal(t, 0, res.ActiveFilterCount, "search never counts as an active filter")
		})
	}
}

func TestQueryApprovalStatusFilter(t *testing.T) {
	f := DefaultFilter(Products())
	f.Statuses = []string{StatusInProgress}
	f.Sort = keepOrder()

	res, err := Query(Products(), f)
	require.NoError(t, err)

	assert.Equal(t, []string{"ALC-005", "ALC-010"}, codes(res.Products))
	assert.Equal(t, 1, res.ActiveFilterCount)
}

func TestQueryPriceRangeUsesMinimumVariantPrice(t *testing.T) {
	// ALC-003's variants are 5000/22000/78000: the representative price is
	// the minimum, so a [0, 10000] range keeps it even though two of its
	// variants cost more.
	f := DefaultFilter(Products())
	f.Price = PriceRange{Min: 0, Max: 10000}
	f.Sort = keepOrder()

	res, err := Query(Products(), f)
	require.NoError(t, err)

	assert.Equal(t, []string{"ALC-003", "ALC-011"}, codes(res.Products))
	assert.Equal(t, 1, res.ActiveFilterCount)
}

func TestQueryPriceRangeBoundsAreInclusive(t *testing.T) {
	f := DefaultFilter(Products())
	f.Price = PriceRange{Min: 5000, Max: 6000}
	f.Sort = keepOrder()

	res, err := Query(Products(), f)
	require.NoError(t, err)

	assert.Equal(t, []string{"ALC-003", "ALC-011"}, codes(res.Products))
}

func TestQueryRejectsInvertedPriceRange(t *testing.T) {
	f := DefaultFilter(Products())
	f.Price = PriceRange{Min: 50000, Max: 10000}

	_, err := Query(Products(), f)
	assert.ErrorIs(t, err, ErrInvalidPriceRange)
}

func TestQuerySortModes(t *testing.T) {
	sauces := func(sort SortMode) []string {
		f := DefaultFilter(Products())
		f.Category = CategorySauce
		f.Sort = sort
		res, err := Query(Products(), f)
		require.NoError(t, err)
		return codes(res.Products)
	}

	// Names: Saus BBQ Smoky < Saus Teriyaki Jepang < Saus Tiram Premium <
	// Saus Tomat Premium.
	assert.Equal(t, []string{"ALC-007", "ALC-010", "ALC-004", "ALC-001"}, sauces(SortNameAsc))
	assert.Equal(t, []string{"ALC-001", "ALC-004", "ALC-010", "ALC-007"}, sauces(SortNameDesc))

	// First-variant prices: ALC-001=15000, ALC-007=20000, ALC-004=25000,
	// ALC-010=28000.
	assert.Equal(t, []string{"ALC-001", "ALC-007", "ALC-004", "ALC-010"}, sauces(SortPriceAsc))
	assert.Equal(t, []string{"ALC-010", "ALC-004", "ALC-007", "ALC-001"}, sauces(SortPriceDesc))
}

func TestQueryPriceSortUsesFirstVariantNotMinimum(t *testing.T) {
	// The range filter ranks by the cheapest variant while the price sort
	// ranks by the first listed variant. For this synthetic product the two
	// disagree, which is inherited storefront behavior the engine must keep.
	odd := Product{
		Code: "TST-001", Name: "Tester", Category: CategorySauce, ApprovalStatus: StatusPIRT,
		Variants: []Variant{
			{PackLabel: "Large", UnitPrice: 90000, CartonPrice: 990000},
			{PackLabel: "Small", UnitPrice: 1000, CartonPrice: 11000},
		},
	}
	dataset := append([]Product{odd}, Products()...)

	f := DefaultFilter(dataset)
	f.Sort = SortPriceAsc
	res, err := Query(dataset, f)
	require.NoError(t, err)

	got := codes(res.Products)
	assert.Equal(t, "TST-001", got[len(got)-1],
		"sorts by the first variant (90000), even though its cheapest variant is the lowest in the dataset")

	// Yet the range filter sees it as a 1000-rupiah product.
	f = DefaultFilter(dataset)
	f.Price = PriceRange{Min: 0, Max: 1500}
	f.Sort = keepOrder()
	res, err = Query(dataset, f)
	require.NoError(t, err)
	assert.Equal(t, []string{"TST-001"}, codes(res.Products))
}

func TestQuerySortIsStableAndTotal(t *testing.T) {
	// ALC-005 and ALC-010 share a first-variant price of 28000; stable sort
	// must keep their dataset order.
	f := DefaultFilter(Products())
	f.Sort = SortPriceAsc

	first, err := Query(Products(), f)
	require.NoError(t, err)
	second, err := Query(Products(), f)
	require.NoError(t, err)

	assert.Equal(t, codes(first.Products), codes(second.Products), "identical queries must order identically")
	assert.Len(t, first.Products, len(Products()), "sorting must not drop or duplicate products")

	seen := make(map[string]int)
	for _, p := range first.Products {
		seen[p.Code]++
	}
	for code, n := range seen {
		assert.Equal(t, 1, n, "product %s appears once", code)
	}

	idx := func(code string) int {
		for i, c := range codes(first.Products) {
			if c == code {
				return i
			}
		}
		return -1
	}
	assert.Less(t, idx("ALC-005"), idx("ALC-010"), "ties keep dataset order")
}

func TestQueryActiveFilterCount(t *testing.T) {
	maxPrice := MaxUnitPrice(Products())

	tests := []struct {
		name   string
		mutate func(*FilterState)
		want   int
	}{
		{"all defaults", func(f *FilterState) {}, 0},
		{"category only", func(f *FilterState) { f.Category = CategorySeasoning }, 1},
		{"each selected status counts", func(f *FilterState) {
			f.Statuses = []string{StatusPIRT, StatusInProgress}
		}, 2},
		{"narrowed minimum", func(f *FilterState) { f.Price.Min = 1 }, 1},
		{"narrowed maximum", func(f *FilterState) { f.Price.Max = maxPrice - 1 }, 1},
		{"search never counts", func(f *FilterState) { f.Search = "saus" }, 0},
		{"category plus two statuses", func(f *FilterState) {
			f.Category = CategorySauce
			f.Statuses = []string{StatusPIRT, StatusInProgress}
		}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := DefaultFilter(Products())
			tt.mutate(&f)

			res, err := Query(Products(), f)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.ActiveFilterCount)
		})
	}
}

func TestQueryFilterMonotonicity(t *testing.T) {
	base := DefaultFilter(Products())
	base.Sort = keepOrder()
	baseRes, err := Query(Products(), base)
	require.NoError(t, err)

	narrowings := []func(*FilterState){
		func(f *FilterState) { f.Category = CategorySambal },
		func(f *FilterState) { f.Statuses = []string{StatusPIRT} },
		func(f *FilterState) { f.Price = PriceRange{Min: 10000, Max: 30000} },
		func(f *FilterState) { f.Search = "bumbu" },
	}

	for i, narrow := range narrowings {
		f := base
		narrow(&f)
		res, err := Query(Products(), f)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(res.Products), len(baseRes.Products), "narrowing %d", i)
	}
}

func TestQueryDoesNotMutateInput(t *testing.T) {
	before := codes(Products())

	f := DefaultFilter(Products())
	f.Sort = SortPriceDesc
	_, err := Query(Products(), f)
	require.NoError(t, err)

	assert.Equal(t, before, codes(Products()), "the shared dataset order must survive sorting")
}
