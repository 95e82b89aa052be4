// internal/pkg/whatsapp/link_test.go
package whatsapp

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alcho-id/alcho-backend/internal/domain/cart"
	"github.com/alcho-id/alcho-backend/internal/domain/catalog"
)

const testPhone = "6281249186623"

func decodeText(t *testing.T, link string) string {
	t.Helper()
	u, err := url.Parse(link)
	require.NoError(t, err)
	return u.Query().Get("text")
}

func TestOrderLink(t *testing.T) {
	p, ok := catalog.FindProduct("ALC-001")
	require.True(t, ok)
	v, ok := p.Variant("250ml Botol")
	require.True(t, ok)

	c := cart.New()
	require.NoError(t, c.AddItem(p, v, 5))

	link := NewBuilder(testPhone).OrderLink(c.Items())
	require.True(t, strings.HasPrefix(link, "https://wa.me/"+testPhone+"?text="))

	msg := decodeText(t, link)
	assert.Contains(t, msg, "1. *Saus Tomat Premium*")
	assert.Contains(t, msg, "Kode: ALC-001")
	assert.Contains(t, msg, "Varian: 250ml Botol")
	assert.Contains(t, msg, "Jumlah: 5 pcs")
	assert.Contains(t, msg, "Subtotal: Rp 75.000")
	assert.Contains(t, msg, "*Total: Rp 75.000*")
}

func TestOrderLinkNumbersMultipleItems(t *testing.T) {
	first, _ := catalog.FindProduct("ALC-001")
	fv, _ := first.Variant("250ml Botol")
	second, _ := catalog.FindProduct("ALC-003")
	sv, _ := second.Variant("50g Sachet")

	c := cart.New()
	require.NoError(t, c.AddItem(first, fv, 1))
	require.NoError(t, c.AddItem(second, sv, 2))

	msg := decodeText(t, NewBuilder(testPhone).OrderLink(c.Items()))
	assert.Contains(t, msg, "1. *Saus Tomat Premium*")
	assert.Contains(t, msg, "2. *Bumbu Nasi Goreng Spesial*")
	// 15000 + 2*5000
	assert.Contains(t, msg, "*Total: Rp 25.000*")
}

func TestOrderLinkEmptyCart(t *testing.T) {
	assert.Equal(t, "", NewBuilder(testPhone).OrderLink(nil))
}

func TestProductLink(t *testing.T) {
	p, ok := catalog.FindProduct("ALC-007")
	require.True(t, ok)

	msg := decodeText(t, NewBuilder(testPhone).ProductLink(p))
	assert.Contains(t, msg, "*Saus BBQ Smoky*")
	assert.Contains(t, msg, "Kode: ALC-007")
}

func TestInquiryLink(t *testing.T) {
	msg := decodeText(t, NewBuilder(testPhone).InquiryLink())
	assert.Contains(t, msg, "Halo Admin ALCHO")
}
