// internal/pkg/whatsapp/link.go
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/alcho-id/alcho-backend/internal/domain/cart"
	"github.com/alcho-id/alcho-backend/internal/domain/catalog"
	"github.com/alcho-id/alcho-backend/internal/pkg/currency"
)

// Builder generates prefilled wa.me links for the store's order channel.
// It only reads cart contents, it never mutates them.
type Builder struct {
	phone string
}

// NewBuilder creates a link builder for the given phone number in
// international format without the leading plus, e.g. "6281249186623".
func NewBuilder(phone string) *Builder {
	return &Builder{phone: phone}
}

// OrderLink renders the cart's line items into a prefilled order message:
// one numbered block per item with code, variant, quantity and subtotal,
// followed by the grand total. Returns "" for an empty cart.
func (b *Builder) OrderLink(items []cart.LineItem) string {
	if len(items) == 0 {
		return ""
	}

	var msg strings.Builder
	msg.WriteString("Halo Admin ALCHO, saya ingin memesan:\n\n")

	var total int64
	for i, item := range items {
		fmt.Fprintf(&msg, "%d. *%s*\n", i+1, item.Product.Name)
		fmt.Fprintf(&msg, "   Kode: %s\n", item.Product.Code)
		fmt.Fprintf(&msg, "   Varian: %s\n", item.Variant.PackLabel)
		fmt.Fprintf(&msg, "   Jumlah: %d pcs\n", item.Quantity)
		fmt.Fprintf(&msg, "   Subtotal: %s\n\n", currency.Format(item.Subtotal()))
		total += item.Subtotal()
	}

	fmt.Fprintf(&msg, "---\n*Total: %s*\n\n", currency.Format(total))
	msg.WriteString("Mohon konfirmasi ketersediaan dan ongkos kirim. Terima kasih!")

	return b.link(msg.String())
}

// ProductLink builds an inquiry link for a single catalog product.
func (b *Builder) ProductLink(p catalog.Product) string {
	msg := fmt.Sprintf(
		"Halo Admin ALCHO, saya tertarik untuk memesan:\n\n*%s*\nKode: %s\n\nMohon informasi lebih lanjut. Terima kasih!",
		p.Name, p.Code,
	)
	return b.link(msg)
}

// InquiryLink builds the generic contact link used outside any product
// context.
func (b *Builder) InquiryLink() string {
	return b.link("Halo Admin ALCHO, saya tertarik dengan produk bumbu dan saus Anda. Mohon informasi lebih lanjut. Terima kasih!")
}

func (b *Builder) link(message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", b.phone, url.QueryEscape(message))
}
