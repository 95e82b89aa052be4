// internal/pkg/export/csv_test.go
package export

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alcho-id/alcho-backend/internal/domain/catalog"
)

func TestPricelistCSV(t *testing.T) {
	out, err := PricelistCSV(catalog.Products())
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)

	assert.Equal(t, pricelistHeader, records[0])

	variantCount := 0
	for _, p := range catalog.Products() {
		variantCount += len(p.Variants)
	}
	assert.Len(t, records, variantCount+1, "one row per variant plus header")

	assert.Equal(t, []string{"ALC-001", "Saus Tomat Premium", "Sauce", "P-IRT", "250ml Botol", "15000", "165000"}, records[1])
}

func TestPricelistCSVEmpty(t *testing.T) {
	out, err := PricelistCSV(nil)
	require.NoError(t, err)
	assert.Equal(t, "Kode,Nama Produk,Kategori,Status Izin,Kemasan,Harga Satuan,Harga Karton\n", out)
}
