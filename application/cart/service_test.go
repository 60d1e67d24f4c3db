package cart

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"storefront/domain/cart"
	"storefront/domain/catalog"
	"storefront/infrastructure/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *ApplicationService {
	products := memory.NewProductRepository(tote(), pouch())
	return NewApplicationService(NewRegistry(memory.NewKVStore()), products)
}

func intPtr(v int) *int { return &v }

func TestApplicationService_AddItem(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	resp, err := svc.AddItem(ctx, "guest-1", AddItemRequest{ProductID: "1"})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 1, resp.Items[0].Quantity, "quantity defaults to 1")
	assert.Nil(t, resp.Items[0].SelectedSize)

	resp, err = svc.AddItem(ctx, "guest-1", AddItemRequest{ProductID: "1", Quantity: intPtr(1)})
	require.NoError(t, err)
	resp, err = svc.AddItem(ctx, "guest-1", AddItemRequest{ProductID: "3", Quantity: intPtr(1)})
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Count)
	assert.Equal(t, int64(3097), resp.Total)
	assert.Equal(t, QuoteResponse{Subtotal: 3097, Shipping: 0, Tax: 557, Total: 3654, FreeShipping: true}, resp.Quote)
}

func TestApplicationService_AddItemErrors(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.AddItem(ctx, "guest-1", AddItemRequest{ProductID: "1", Quantity: intPtr(0)})
	assert.ErrorIs(t, err, cart.ErrInvalidQuantity)

	_, err = svc.AddItem(ctx, "guest-1", AddItemRequest{ProductID: "404"})
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)

	assert.Empty(t, svc.GetCart(ctx, "guest-1").Items)
}

func TestApplicationService_UpdateRemoveClear(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	_, err := svc.AddItem(ctx, "u", AddItemRequest{ProductID: "1", Size: "M"})
	require.NoError(t, err)

	resp, err := svc.UpdateItem(ctx, "u", UpdateItemRequest{ProductID: "1", Size: "M", Quantity: intPtr(3)})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Count)
	require.NotNil(t, resp.Items[0].SelectedSize)
	assert.Equal(t, "M", *resp.Items[0].SelectedSize)

	resp = svc.RemoveItem(ctx, "u", RemoveItemRequest{ProductID: "1"})
	assert.Equal(t, 3, resp.Count, "variant must match to remove")

	resp = svc.RemoveItem(ctx, "u", RemoveItemRequest{ProductID: "1", Size: "M"})
	assert.Equal(t, 0, resp.Count)

	_, err = svc.AddItem(ctx, "u", AddItemRequest{ProductID: "3"})
	require.NoError(t, err)
	resp = svc.ClearCart(ctx, "u")
	assert.Empty(t, resp.Items)
	assert.Equal(t, QuoteResponse{Shipping: 50, Total: 50}, svc.GetQuote(ctx, "u"))
}

func TestApplicationService_Wishlist(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	w, err := svc.AddToWishlist(ctx, "u", "1")
	require.NoError(t, err)
	assert.Equal(t, 1, w.Count)

	m, err := svc.ToggleWishlist(ctx, "u", "3")
	require.NoError(t, err)
	assert.True(t, m.InWishlist)
	assert.Equal(t, 2, m.Count)

	m, err = svc.ToggleWishlist(ctx, "u", "3")
	require.NoError(t, err)
	assert.False(t, m.InWishlist)

	assert.True(t, svc.InWishlist(ctx, "u", "1").InWishlist)
	assert.False(t, svc.InWishlist(ctx, "other", "1").InWishlist)

	_, err = svc.ToggleWishlist(ctx, "u", "404")
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)
	_, err = svc.AddToWishlist(ctx, "u", "404")
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)

	w = svc.RemoveFromWishlist(ctx, "u", "1")
	assert.Equal(t, 0, w.Count)
	assert.NotNil(t, svc.GetWishlist(ctx, "u").Items)
}

func TestApplicationService_ConcurrentToggleAlternates(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	const toggles = 200
	var saved atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < toggles; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m, err := svc.ToggleWishlist(ctx, "u", "3")
			if err == nil && m.InWishlist {
				saved.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(toggles/2), saved.Load(), "every toggle flips exactly once")
	assert.False(t, svc.InWishlist(ctx, "u", "3").InWishlist)
}

func TestApplicationService_ToggleUnsavesRetiredProduct(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	retired := catalog.Product{ID: "77", Name: "Retired Clutch", Price: 899}
	require.NoError(t, svc.Store(ctx, "u").AddToWishlist(ctx, retired))

	m, err := svc.ToggleWishlist(ctx, "u", "77")
	require.NoError(t, err)
	assert.False(t, m.InWishlist)
	assert.Equal(t, 0, m.Count)

	_, err = svc.ToggleWishlist(ctx, "u", "77")
	assert.ErrorIs(t, err, catalog.ErrProductNotFound, "a retired product cannot be saved again")
}
