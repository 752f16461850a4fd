package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbelyakov/go-market/internal/logger"
	"github.com/dbelyakov/go-market/internal/store"
	"github.com/dbelyakov/go-market/models"
)

func newTestCartService(cartRepo *mockCartRepository, productRepo *mockProductRepository) CartService {
	return NewCartService(cartRepo, productRepo, logger.Nop())
}

func TestCartService_AddItem_Success(t *testing.T) {
	ctx := context.Background()

	itemAdded := false
	cartRepo := &mockCartRepository{
		addItemFn: func(_ context.Context, userID, cartID, productID int64) error {
			assert.Equal(t, int64(1), userID)
			assert.Equal(t, int64(10), cartID)
			assert.Equal(t, int64(100), productID)
			itemAdded = true
			return nil
		},
		findCartFn: func(_ context.Context, userID, cartID int64) (models.Cart, error) {
			return models.Cart{CartID: cartID, UserID: userID, Items: []int64{100}}, nil
		},
	}
	productRepo := &mockProductRepository{
		findProductByIDFn: func(_ context.Context, productID int64) (models.Product, error) {
			return models.Product{ProductID: productID, Name: "widget", Price: 9.99}, nil
		},
	}
	carts := newTestCartService(cartRepo, productRepo)

	cart, err := carts.AddItem(ctx, 1, 10, 100)

	require.NoError(t, err)
	assert.True(t, itemAdded)
	assert.Equal(t, []int64{100}, cart.Items)
}

func TestCartService_AddItem_UnknownProduct(t *testing.T) {
	ctx := context.Background()

	itemAdded := false
	cartRepo := &mockCartRepository{
		addItemFn: func(_ context.Context, _, _, _ int64) error {
			itemAdded = true
			return nil
		},
	}
	carts := newTestCartService(cartRepo, &mockProductRepository{})

	_, err := carts.AddItem(ctx, 1, 10, 404)

	assert.ErrorIs(t, err, store.ErrProductNotFound)
	assert.False(t, itemAdded, "missing product must be rejected before touching the cart")
}

func TestCartService_AddItem_ForeignCartLooksMissing(t *testing.T) {
	ctx := context.Background()

	cartRepo := &mockCartRepository{
		addItemFn: func(_ context.Context, _, _, _ int64) error {
			// The ownership-filtered statement matched zero rows.
			return store.ErrCartNotFound
		},
	}
	productRepo := &mockProductRepository{
		findProductByIDFn: func(_ context.Context, productID int64) (models.Product, error) {
			return models.Product{ProductID: productID}, nil
		},
	}
	carts := newTestCartService(cartRepo, productRepo)

	_, err := carts.AddItem(ctx, 1, 10, 100)
	assert.ErrorIs(t, err, store.ErrCartNotFound)
}

func TestCartService_RemoveItem_Success(t *testing.T) {
	ctx := context.Background()

	items := []int64{100, 200}
	cartRepo := &mockCartRepository{
		findCartFn: func(_ context.Context, userID, cartID int64) (models.Cart, error) {
			return models.Cart{CartID: cartID, UserID: userID, Items: items}, nil
		},
		removeItemFn: func(_ context.Context, _, _, productID int64) error {
			assert.Equal(t, int64(100), productID)
			items = []int64{200}
			return nil
		},
	}
	carts := newTestCartService(cartRepo, &mockProductRepository{})

	cart, err := carts.RemoveItem(ctx, 1, 10, 100)

	require.NoError(t, err)
	assert.Equal(t, []int64{200}, cart.Items)
}

func TestCartService_RemoveItem_NotInCart(t *testing.T) {
	ctx := context.Background()

	cartRepo := &mockCartRepository{
		findCartFn: func(_ context.Context, userID, cartID int64) (models.Cart, error) {
			return models.Cart{CartID: cartID, UserID: userID, Items: []int64{200}}, nil
		},
	}
	carts := newTestCartService(cartRepo, &mockProductRepository{})

	_, err := carts.RemoveItem(ctx, 1, 10, 100)
	assert.ErrorIs(t, err, ErrItemNotInCart)
}

func TestCartService_RemoveItem_CartNotFound(t *testing.T) {
	ctx := context.Background()
	carts := newTestCartService(&mockCartRepository{}, &mockProductRepository{})

	_, err := carts.RemoveItem(ctx, 1, 404, 100)
	assert.ErrorIs(t, err, store.ErrCartNotFound)
}

func TestCartService_ClearCart(t *testing.T) {
	ctx := context.Background()

	cleared := false
	cartRepo := &mockCartRepository{
		clearItemsFn: func(_ context.Context, userID, cartID int64) error {
			assert.Equal(t, int64(1), userID)
			assert.Equal(t, int64(10), cartID)
			cleared = true
			return nil
		},
		findCartFn: func(_ context.Context, userID, cartID int64) (models.Cart, error) {
			return models.Cart{CartID: cartID, UserID: userID, Items: []int64{}}, nil
		},
	}
	carts := newTestCartService(cartRepo, &mockProductRepository{})

	cart, err := carts.ClearCart(ctx, 1, 10)

	require.NoError(t, err)
	assert.True(t, cleared)
	assert.Empty(t, cart.Items)
}

func TestCartService_ListCarts_EchoesPagination(t *testing.T) {
	ctx := context.Background()

	cartRepo := &mockCartRepository{
		listCartsFn: func(_ context.Context, userID int64, skip, limit uint64) ([]models.Cart, int64, error) {
			assert.Equal(t, int64(1), userID)
			return []models.Cart{{CartID: 10, UserID: 1}}, 7, nil
		},
	}
	carts := newTestCartService(cartRepo, &mockProductRepository{})

	list, err := carts.ListCarts(ctx, 1, 5, 2)

	require.NoError(t, err)
	assert.Equal(t, uint64(5), list.Skip)
	assert.Equal(t, uint64(2), list.Limit)
	assert.Equal(t, int64(7), list.TotalResults)
	assert.Len(t, list.Carts, 1)
}

func TestCartService_DeleteCart_NotFound(t *testing.T) {
	ctx := context.Background()

	cartRepo := &mockCartRepository{
		deleteCartFn: func(_ context.Context, _, _ int64) error {
			return store.ErrCartNotFound
		},
	}
	carts := newTestCartService(cartRepo, &mockProductRepository{})

	err := carts.DeleteCart(ctx, 1, 404)
	assert.ErrorIs(t, err, store.ErrCartNotFound)
}
