package cart

import (
	"testing"
	"time"

	"storefront/domain/cart"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCart_StoredPayload(t *testing.T) {
	payload := `[
		{"id":"1","name":"Handwoven Tote","price":1299,"originalPrice":2499,"images":["/img/tote.jpg"],"category":"totes","quantity":1,"selectedSize":null,"selectedColor":"Indigo","addedAt":"2025-01-02T03:04:05Z"},
		{"id":"1","name":"Handwoven Tote","price":1299,"quantity":2,"selectedSize":null,"selectedColor":"Indigo"},
		{"id":"3","name":"Cotton Pouch","price":499,"quantity":0,"selectedSize":null,"selectedColor":null}
	]`

	c, err := decodeCart([]byte(payload))
	require.NoError(t, err)

	lines := c.Lines()
	require.Len(t, lines, 1, "duplicates merge and zero-quantity lines drop")
	assert.Equal(t, 3, lines[0].Quantity())
	assert.Equal(t, cart.Variant{Color: "Indigo"}, lines[0].Variant())
	assert.Equal(t, int64(2499), lines[0].Snapshot().OriginalPrice)
	assert.Equal(t, time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC), lines[0].AddedAt().UTC())
}

func TestDecodeCart_Invalid(t *testing.T) {
	_, err := decodeCart([]byte(`{"id":"1"}`))
	assert.Error(t, err)
}

func TestEncodeDecodeWishlist(t *testing.T) {
	w := cart.NewWishlist()
	_, err := w.Add(tote())
	require.NoError(t, err)
	_, err = w.Add(pouch())
	require.NoError(t, err)

	data, err := encodeWishlist(w)
	require.NoError(t, err)

	decoded, err := decodeWishlist(data)
	require.NoError(t, err)
	entries := decoded.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "1", entries[0].ProductID())
	assert.Equal(t, "Cotton Pouch", entries[1].Snapshot().Name)
}

func TestEncodeEmptyCart(t *testing.T) {
	data, err := encodeCart(cart.NewCart())
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}
