package service

import (
	"context"

	"github.com/dbelyakov/go-market/models"
)

// AuthService is the authentication and authorization core.
//
// Login exchanges a username/password pair for a signed bearer token.
// Authenticate turns an inbound bearer token into a resolved principal.
// Authorize decides whether a resolved principal holds a required scope set.
type AuthService interface {
	Login(ctx context.Context, username, password string) (models.Token, error)
	Authenticate(ctx context.Context, tokenString string) (models.Principal, error)
	Authorize(principal models.Principal, requiredScopes ...string) (int64, error)
}

// UserService manages account lifecycle: registration with scope seeding,
// lookup, profile mutation and cascading deletion.
type UserService interface {
	Register(ctx context.Context, req models.CreateUserRequest) (models.User, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)
	ListUsers(ctx context.Context, skip, limit uint64) (models.UserList, error)
	UpdateUser(ctx context.Context, userID int64, req models.UpdateUserRequest) (models.User, error)
	DeleteUser(ctx context.Context, userID int64) error
	DeleteAllUsers(ctx context.Context) error
}

// ProductService manages the product catalog.
type ProductService interface {
	CreateProduct(ctx context.Context, req models.CreateProductRequest) (models.Product, error)
	GetProduct(ctx context.Context, productID int64) (models.Product, error)
	ListProducts(ctx context.Context, query models.ProductQuery) (models.ProductList, error)
	PatchProduct(ctx context.Context, productID int64, update models.ProductUpdate) (models.Product, error)
	ReplaceProduct(ctx context.Context, productID int64, req models.CreateProductRequest) (models.Product, error)
	DeleteProduct(ctx context.Context, productID int64) error
}

// CartService manages per-user shopping carts. Every method takes the
// resolved owner's id, never a client-supplied one, so self-scoped
// operations are structurally confined to the caller's own carts.
type CartService interface {
	CreateCart(ctx context.Context, userID int64) (models.Cart, error)
	GetCart(ctx context.Context, userID, cartID int64) (models.Cart, error)
	ListCarts(ctx context.Context, userID int64, skip, limit uint64) (models.CartList, error)
	AddItem(ctx context.Context, userID, cartID, productID int64) (models.Cart, error)
	RemoveItem(ctx context.Context, userID, cartID, productID int64) (models.Cart, error)
	ClearCart(ctx context.Context, userID, cartID int64) (models.Cart, error)
	DeleteCart(ctx context.Context, userID, cartID int64) error
}
