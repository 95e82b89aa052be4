// internal/pkg/export/csv.go
package export

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/alcho-id/alcho-backend/internal/domain/catalog"
)

// pricelistHeader matches the downloadable pricelist's column layout.
var pricelistHeader = []string{
	"Kode", "Nama Produk", "Kategori", "Status Izin", "Kemasan", "Harga Satuan", "Harga Karton",
}

// PricelistCSV serializes the full product catalog to CSV, one row per
// variant. Prices are written as plain integers; display formatting stays
// with the consumer.
func PricelistCSV(products []catalog.Product) (string, error) {
	var buf strings.Builder
	w := csv.NewWriter(&buf)

	if err := w.Write(pricelistHeader); err != nil {
		return "", fmt.Errorf("failed to write pricelist header: %w", err)
	}

	for _, p := range products {
		for _, v := range p.Variants {
			row := []string{
				p.Code,
				p.Name,
				p.Category,
				p.ApprovalStatus,
				v.PackLabel,
				strconv.FormatInt(v.UnitPrice, 10),
				strconv.FormatInt(v.CartonPrice, 10),
			}
			if err := w.Write(row); err != nil {
				return "", fmt.Errorf("failed to write pricelist row for %s: %w", p.Code, err)
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush pricelist: %w", err)
	}
	return buf.String(), nil
}
