package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dbelyakov/go-market/internal/logger"
	"github.com/dbelyakov/go-market/models"
)

// cartRepository is the PostgreSQL-backed implementation of [CartRepository].
// Carts live in the "carts" table; their items are rows in "cart_items".
//
// Every statement here carries the owning user's id in its WHERE clause, so a
// cart belonging to another user is indistinguishable from a cart that does
// not exist. That property backs the ownership guard one layer up.
type cartRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCartRepository constructs a [CartRepository] backed by the provided
// database connection and logger.
func NewCartRepository(db *DB, logger *logger.Logger) CartRepository {
	logger.Debug().Msg("creating cart repository")
	return &cartRepository{
		db:     db,
		logger: logger,
	}
}

// CreateCart inserts an empty cart owned by the given user.
func (r *cartRepository) CreateCart(ctx context.Context, userID int64) (models.Cart, error) {
	log := logger.FromContext(ctx)

	var created models.Cart
	row := r.db.QueryRowContext(ctx, createCart, userID)
	if err := row.Scan(&created.CartID, &created.UserID); err != nil {
		log.Err(err).Str("func", "*cartRepository.CreateCart").Msg("error: creating cart")
		return models.Cart{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	created.Items = []int64{}
	return created, nil
}

// FindCart retrieves the cart with the given id owned by the given user,
// including its item list. A missing or foreign cart maps to [ErrCartNotFound].
func (r *cartRepository) FindCart(ctx context.Context, userID, cartID int64) (models.Cart, error) {
	log := logger.FromContext(ctx)

	var found models.Cart
	row := r.db.QueryRowContext(ctx, findCart, cartID, userID)
	if err := row.Scan(&found.CartID, &found.UserID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Cart{}, ErrCartNotFound
		}

		log.Err(err).Str("func", "*cartRepository.FindCart").Msg("error: finding cart")
		return models.Cart{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	items, err := r.findItems(ctx, found.CartID)
	if err != nil {
		return models.Cart{}, err
	}

	found.Items = items
	return found, nil
}

// ListCarts returns one page of the user's carts ordered by id, plus the
// total number of carts the user owns.
func (r *cartRepository) ListCarts(ctx context.Context, userID int64, skip, limit uint64) ([]models.Cart, int64, error) {
	log := logger.FromContext(ctx)

	var total int64
	if err := r.db.QueryRowContext(ctx, countCarts, userID).Scan(&total); err != nil {
		log.Err(err).Str("func", "*cartRepository.ListCarts").Msg("error: counting carts")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, listCarts, userID, skip, limit)
	if err != nil {
		log.Err(err).Str("func", "*cartRepository.ListCarts").Msg("error: listing carts")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	carts := make([]models.Cart, 0, limit)
	for rows.Next() {
		var cart models.Cart
		if err := rows.Scan(&cart.CartID, &cart.UserID); err != nil {
			log.Err(err).Str("func", "*cartRepository.ListCarts").Msg("error: scanning cart row")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		carts = append(carts, cart)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	for i := range carts {
		items, err := r.findItems(ctx, carts[i].CartID)
		if err != nil {
			return nil, 0, err
		}
		carts[i].Items = items
	}

	return carts, total, nil
}

// AddItem appends one instance of the product to the cart. The insert itself
// is constrained to the owning user; zero affected rows maps to
// [ErrCartNotFound].
func (r *cartRepository) AddItem(ctx context.Context, userID, cartID, productID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, addCartItem, cartID, userID, productID)
	if err != nil {
		log.Err(err).Str("func", "*cartRepository.AddItem").Msg("error: adding cart item")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrCartNotFound
	}

	return nil
}

// RemoveItem removes every instance of the product from the cart. Whether the
// product was present at all is the service layer's concern; the repository
// only guards ownership.
func (r *cartRepository) RemoveItem(ctx context.Context, userID, cartID, productID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, removeCartItems, cartID, userID, productID); err != nil {
		log.Err(err).Str("func", "*cartRepository.RemoveItem").Msg("error: removing cart item")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// ClearItems removes every item from the cart, leaving the cart itself in
// place.
func (r *cartRepository) ClearItems(ctx context.Context, userID, cartID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, clearCartItems, cartID, userID); err != nil {
		log.Err(err).Str("func", "*cartRepository.ClearItems").Msg("error: clearing cart items")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// DeleteCart removes the cart and (via cascade) its items.
// A missing or foreign cart maps to [ErrCartNotFound].
func (r *cartRepository) DeleteCart(ctx context.Context, userID, cartID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteCart, cartID, userID)
	if err != nil {
		log.Err(err).Str("func", "*cartRepository.DeleteCart").Msg("error: deleting cart")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrCartNotFound
	}

	return nil
}

// DeleteCartsByUserID removes every cart owned by the given user. Used only
// as part of the account deletion cascade.
func (r *cartRepository) DeleteCartsByUserID(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteCartsByUserID, userID); err != nil {
		log.Err(err).Str("func", "*cartRepository.DeleteCartsByUserID").Msg("error: deleting user carts")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// findItems loads the item list of one cart in insertion order.
func (r *cartRepository) findItems(ctx context.Context, cartID int64) ([]int64, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, findCartItems, cartID)
	if err != nil {
		log.Err(err).Str("func", "*cartRepository.findItems").Msg("error: querying cart items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := []int64{}
	for rows.Next() {
		var productID int64
		if err := rows.Scan(&productID); err != nil {
			log.Err(err).Str("func", "*cartRepository.findItems").Msg("error: scanning cart item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		items = append(items, productID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}
