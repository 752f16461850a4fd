package store

import (
	"context"

	"github.com/dbelyakov/go-market/models"
)

// UserRepository is the data-access contract for the users collection.
// The underlying table enforces a unique constraint on the username.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	ListUsers(ctx context.Context, skip, limit uint64) ([]models.User, int64, error)
	UpdateUser(ctx context.Context, userID int64, update UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, userID int64) error
	DeleteAllUsers(ctx context.Context) error
}

// UserUpdate carries the persisted representation of a profile mutation.
// Nil fields are left untouched. PasswordHash is always a bcrypt digest;
// hashing happens in the service layer, never here.
type UserUpdate struct {
	Username     *string
	PasswordHash *string
}

// PermissionRepository is the data-access contract for permission grants.
// Grants are write-once: created at registration and removed only as part of
// deleting the owning account.
type PermissionRepository interface {
	CreatePermissions(ctx context.Context, userID int64, scopes ...string) error
	FindScopesByUserID(ctx context.Context, userID int64) ([]string, error)
	DeletePermissionsByUserID(ctx context.Context, userID int64) error
}

// ProductRepository is the data-access contract for the product catalog.
type ProductRepository interface {
	CreateProduct(ctx context.Context, product models.Product) (models.Product, error)
	FindProductByID(ctx context.Context, productID int64) (models.Product, error)
	ListProducts(ctx context.Context, query models.ProductQuery) ([]models.Product, int64, error)
	UpdateProduct(ctx context.Context, productID int64, update models.ProductUpdate) error
	ReplaceProduct(ctx context.Context, productID int64, product models.Product) error
	DeleteProduct(ctx context.Context, productID int64) error
}

// CartRepository is the data-access contract for carts and their items.
//
// Every method except DeleteCartsByUserID takes the owning user's id and
// constrains the statement to it, so callers are structurally unable to reach
// another user's cart through this interface.
type CartRepository interface {
	CreateCart(ctx context.Context, userID int64) (models.Cart, error)
	FindCart(ctx context.Context, userID, cartID int64) (models.Cart, error)
	ListCarts(ctx context.Context, userID int64, skip, limit uint64) ([]models.Cart, int64, error)
	AddItem(ctx context.Context, userID, cartID, productID int64) error
	RemoveItem(ctx context.Context, userID, cartID, productID int64) error
	ClearItems(ctx context.Context, userID, cartID int64) error
	DeleteCart(ctx context.Context, userID, cartID int64) error
	DeleteCartsByUserID(ctx context.Context, userID int64) error
}
