// internal/pkg/currency/format_test.go
package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "Rp 0"},
		{5000, "Rp 5.000"},
		{15000, "Rp 15.000"},
		{75000, "Rp 75.000"},
		{858000, "Rp 858.000"},
		{1250000, "Rp 1.250.000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Format(tt.amount))
	}
}
