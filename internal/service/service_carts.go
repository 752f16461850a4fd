package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/dbelyakov/go-market/internal/logger"
	"github.com/dbelyakov/go-market/internal/store"
	"github.com/dbelyakov/go-market/models"
)

// cartService is the concrete implementation of CartService.
//
// Ownership is enforced one layer down: every cart repository call carries
// the owner's id, so a cart belonging to someone else surfaces here as
// store.ErrCartNotFound. Clients see plain nonexistence, never a permission
// problem.
type cartService struct {
	cartRepository    store.CartRepository
	productRepository store.ProductRepository
	logger            *logger.Logger
}

// NewCartService constructs a CartService wired to the given repositories.
// The product repository is needed to reject items that do not exist in the
// catalog.
func NewCartService(cartRepository store.CartRepository, productRepository store.ProductRepository, logger *logger.Logger) CartService {
	return &cartService{
		cartRepository:    cartRepository,
		productRepository: productRepository,
		logger:            logger,
	}
}

// CreateCart opens a new empty cart for the given user.
func (s *cartService) CreateCart(ctx context.Context, userID int64) (models.Cart, error) {
	log := logger.FromContext(ctx)

	created, err := s.cartRepository.CreateCart(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("cart creation ended with error")
		return models.Cart{}, fmt.Errorf("cart creation ended with error: %w", err)
	}

	return created, nil
}

// GetCart retrieves one of the user's carts by id.
func (s *cartService) GetCart(ctx context.Context, userID, cartID int64) (models.Cart, error) {
	found, err := s.cartRepository.FindCart(ctx, userID, cartID)
	if err != nil {
		return models.Cart{}, fmt.Errorf("cart search by id failed: %w", err)
	}

	return found, nil
}

// ListCarts returns one page of the user's carts together with the echoed
// pagination parameters and the total result count.
func (s *cartService) ListCarts(ctx context.Context, userID int64, skip, limit uint64) (models.CartList, error) {
	carts, total, err := s.cartRepository.ListCarts(ctx, userID, skip, limit)
	if err != nil {
		return models.CartList{}, fmt.Errorf("cart listing failed: %w", err)
	}

	return models.CartList{
		Skip:         skip,
		Limit:        limit,
		TotalResults: total,
		Carts:        carts,
	}, nil
}

// AddItem places one instance of a product into the cart and returns the
// updated cart.
//
// The product must exist in the catalog (store.ErrProductNotFound otherwise);
// the cart must exist and belong to the user (store.ErrCartNotFound
// otherwise).
func (s *cartService) AddItem(ctx context.Context, userID, cartID, productID int64) (models.Cart, error) {
	log := logger.FromContext(ctx)

	if _, err := s.productRepository.FindProductByID(ctx, productID); err != nil {
		return models.Cart{}, fmt.Errorf("product search by id failed: %w", err)
	}

	if err := s.cartRepository.AddItem(ctx, userID, cartID, productID); err != nil {
		log.Err(err).Int64("cart_id", cartID).Int64("product_id", productID).Msg("cart item addition ended with error")
		return models.Cart{}, fmt.Errorf("cart item addition ended with error: %w", err)
	}

	return s.GetCart(ctx, userID, cartID)
}

// RemoveItem removes every instance of a product from the cart and returns
// the updated cart. Removing a product that is not in the cart is
// [ErrItemNotInCart].
func (s *cartService) RemoveItem(ctx context.Context, userID, cartID, productID int64) (models.Cart, error) {
	log := logger.FromContext(ctx)

	cart, err := s.cartRepository.FindCart(ctx, userID, cartID)
	if err != nil {
		return models.Cart{}, fmt.Errorf("cart search by id failed: %w", err)
	}

	if !slices.Contains(cart.Items, productID) {
		return models.Cart{}, ErrItemNotInCart
	}

	if err := s.cartRepository.RemoveItem(ctx, userID, cartID, productID); err != nil {
		log.Err(err).Int64("cart_id", cartID).Int64("product_id", productID).Msg("cart item removal ended with error")
		return models.Cart{}, fmt.Errorf("cart item removal ended with error: %w", err)
	}

	return s.GetCart(ctx, userID, cartID)
}

// ClearCart removes every item from the cart and returns the emptied cart.
func (s *cartService) ClearCart(ctx context.Context, userID, cartID int64) (models.Cart, error) {
	log := logger.FromContext(ctx)

	if err := s.cartRepository.ClearItems(ctx, userID, cartID); err != nil {
		log.Err(err).Int64("cart_id", cartID).Msg("cart clearing ended with error")
		return models.Cart{}, fmt.Errorf("cart clearing ended with error: %w", err)
	}

	return s.GetCart(ctx, userID, cartID)
}

// DeleteCart removes one of the user's carts entirely.
func (s *cartService) DeleteCart(ctx context.Context, userID, cartID int64) error {
	log := logger.FromContext(ctx)

	if err := s.cartRepository.DeleteCart(ctx, userID, cartID); err != nil {
		log.Err(err).Int64("cart_id", cartID).Msg("cart deletion ended with error")
		return fmt.Errorf("cart deletion ended with error: %w", err)
	}

	return nil
}
