// internal/domain/cart/cart_test.go
package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alcho-id/alcho-backend/internal/domain/catalog"
)

func mustProduct(t *testing.T, code string) catalog.Product {
	t.Helper()
	p, ok := catalog.FindProduct(code)
	require.True(t, ok, "catalog product %s", code)
	return p
}

func mustVariant(t *testing.T, p catalog.Product, pack string) catalog.Variant {
	t.Helper()
	v, ok := p.Variant(pack)
	require.True(t, ok, "variant %s of %s", pack, p.Code)
	return v
}

func TestAddItemMergesSamePair(t *testing.T) {
	p := mustProduct(t, "ALC-001")
	v := mustVariant(t, p, "250ml Botol")

	c := New()
	require.NoError(t, c.AddItem(p, v, 2))
	require.NoError(t, c.AddItem(p, v, 3))

	require.Equal(t, 1, c.Len(), "same (code, pack) must merge, never duplicate")
	items := c.Items()
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, int64(5*15000), c.Total())
	assert.Equal(t, int64(75000), c.Total())
}

func TestAddItemDistinctVariantsStaySeparate(t *testing.T) {
	p := mustProduct(t, "ALC-001")
	small := mustVariant(t, p, "250ml Botol")
	large := mustVariant(t, p, "500ml Botol")

	c := New()
	require.NoError(t, c.AddItem(p, small, 1))
	require.NoError(t, c.AddItem(p, large, 1))

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 2, c.ItemCount())
	assert.Equal(t, int64(15000+27000), c.Total())
}

func TestAddItemRejectsNonPositiveQuantity(t *testing.T) {
	p := mustProduct(t, "ALC-002")
	v := mustVariant(t, p, "250ml Botol")

	c := New()
	for _, qty := range []int{0, -1, -99} {
		err := c.AddItem(p, v, qty)
		assert.ErrorIs(t, err, ErrInvalidQuantity, "quantity %d", qty)
	}
	assert.Equal(t, 0, c.Len(), "rejected adds must not change the cart")
}

func TestUpdateQuantityReplacesValue(t *testing.T) {
	p := mustProduct(t, "ALC-003")
	v := mustVariant(t, p, "50g Sachet")

	c := New()
	require.NoError(t, c.AddItem(p, v, 2))

	c.UpdateQuantity(p.Code, v.PackLabel, 7)
	assert.Equal(t, 7, c.Items()[0].Quantity, "update replaces, it does not increment")
	assert.Equal(t, int64(7*5000), c.Total())
}

func TestUpdateQuantityZeroOrNegativeRemoves(t *testing.T) {
	tests := []struct {
		name string
		qty  int
	}{
		{"zero", 0},
		{"negative", -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustProduct(t, "ALC-004")
			v := mustVariant(t, p, "300ml Botol")

			c := New()
			require.NoError(t, c.AddItem(p, v, 4))

			c.UpdateQuantity(p.Code, v.PackLabel, tt.qty)
			assert.False(t, c.Contains(p.Code, v.PackLabel))
			assert.Equal(t, 0, c.ItemCount())
			assert.Equal(t, int64(0), c.Total())
		})
	}
}

func TestUpdateAndRemoveMissingItemAreNoOps(t *testing.T) {
	p := mustProduct(t, "ALC-005")
	v := mustVariant(t, p, "200g Jar")

	c := New()
	require.NoError(t, c.AddItem(p, v, 1))

	c.UpdateQuantity("ALC-999", "200g Jar", 5)
	c.UpdateQuantity(p.Code, "no-such-pack", 5)
	c.RemoveItem("ALC-999", "200g Jar")

	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 1, c.Items()[0].Quantity)
}

func TestItemCountSumsQuantities(t *testing.T) {
	a := mustProduct(t, "ALC-006")
	av := mustVariant(t, a, "100g Sachet")
	b := mustProduct(t, "ALC-007")
	bv := mustVariant(t, b, "250ml Botol")

	c := New()
	require.NoError(t, c.AddItem(a, av, 3))
	require.NoError(t, c.AddItem(b, bv, 2))

	assert.Equal(t, 5, c.ItemCount(), "item count sums quantities")
	assert.Equal(t, 2, c.Len(), "distinct line item count is separate")
	assert.Equal(t, int64(3*12000+2*20000), c.Total())
}

func TestTotalUsesUnitPriceNotCartonPrice(t *testing.T) {
	p := mustProduct(t, "ALC-001")
	v := mustVariant(t, p, "250ml Botol")
	require.NotEqual(t, v.UnitPrice, v.CartonPrice)

	c := New()
	require.NoError(t, c.AddItem(p, v, 11))
	assert.Equal(t, v.UnitPrice*11, c.Total())
}

func TestClearIsIdempotent(t *testing.T) {
	p := mustProduct(t, "ALC-008")
	v := mustVariant(t, p, "200g Jar")

	c := New()
	require.NoError(t, c.AddItem(p, v, 9))

	c.Clear()
	assert.Equal(t, 0, c.ItemCount())
	assert.Equal(t, int64(0), c.Total())

	c.Clear()
	assert.Equal(t, 0, c.ItemCount())
	assert.Empty(t, c.Items())
}

func TestItemsReturnsCopy(t *testing.T) {
	p := mustProduct(t, "ALC-009")
	v := mustVariant(t, p, "100g Sachet")

	c := New()
	require.NoError(t, c.AddItem(p, v, 1))

	items := c.Items()
	items[0].Quantity = 100

	assert.Equal(t, 1, c.Items()[0].Quantity, "mutating the returned slice must not leak into the cart")
}

func TestRestoreRoundTrip(t *testing.T) {
	p := mustProduct(t, "ALC-010")
	v := mustVariant(t, p, "300ml Botol")

	c := New()
	require.NoError(t, c.AddItem(p, v, 2))

	restored := Restore(c.Items())
	assert.Equal(t, c.ItemCount(), restored.ItemCount())
	assert.Equal(t, c.Total(), restored.Total())
	assert.True(t, restored.Contains(p.Code, v.PackLabel))
}
