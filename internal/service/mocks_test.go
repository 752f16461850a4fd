package service

import (
	"context"

	"github.com/dbelyakov/go-market/internal/store"
	"github.com/dbelyakov/go-market/models"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createUserFn         func(ctx context.Context, user models.User) (models.User, error)
	findUserByUsernameFn func(ctx context.Context, username string) (models.User, error)
	findUserByIDFn       func(ctx context.Context, userID int64) (models.User, error)
	listUsersFn          func(ctx context.Context, skip, limit uint64) ([]models.User, int64, error)
	updateUserFn         func(ctx context.Context, userID int64, update store.UserUpdate) (models.User, error)
	deleteUserFn         func(ctx context.Context, userID int64) error
	deleteAllUsersFn     func(ctx context.Context) error
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	if m.findUserByUsernameFn != nil {
		return m.findUserByUsernameFn(ctx, username)
	}
	return models.User{}, store.ErrUserNotFound
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	if m.findUserByIDFn != nil {
		return m.findUserByIDFn(ctx, userID)
	}
	return models.User{}, store.ErrUserNotFound
}

func (m *mockUserRepository) ListUsers(ctx context.Context, skip, limit uint64) ([]models.User, int64, error) {
	if m.listUsersFn != nil {
		return m.listUsersFn(ctx, skip, limit)
	}
	return nil, 0, nil
}

func (m *mockUserRepository) UpdateUser(ctx context.Context, userID int64, update store.UserUpdate) (models.User, error) {
	if m.updateUserFn != nil {
		return m.updateUserFn(ctx, userID, update)
	}
	return models.User{}, store.ErrUserNotFound
}

func (m *mockUserRepository) DeleteUser(ctx context.Context, userID int64) error {
	if m.deleteUserFn != nil {
		return m.deleteUserFn(ctx, userID)
	}
	return nil
}

func (m *mockUserRepository) DeleteAllUsers(ctx context.Context) error {
	if m.deleteAllUsersFn != nil {
		return m.deleteAllUsersFn(ctx)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.PermissionRepository
// ─────────────────────────────────────────────

type mockPermissionRepository struct {
	createPermissionsFn         func(ctx context.Context, userID int64, scopes ...string) error
	findScopesByUserIDFn        func(ctx context.Context, userID int64) ([]string, error)
	deletePermissionsByUserIDFn func(ctx context.Context, userID int64) error
}

func (m *mockPermissionRepository) CreatePermissions(ctx context.Context, userID int64, scopes ...string) error {
	if m.createPermissionsFn != nil {
		return m.createPermissionsFn(ctx, userID, scopes...)
	}
	return nil
}

func (m *mockPermissionRepository) FindScopesByUserID(ctx context.Context, userID int64) ([]string, error) {
	if m.findScopesByUserIDFn != nil {
		return m.findScopesByUserIDFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockPermissionRepository) DeletePermissionsByUserID(ctx context.Context, userID int64) error {
	if m.deletePermissionsByUserIDFn != nil {
		return m.deletePermissionsByUserIDFn(ctx, userID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.ProductRepository
// ─────────────────────────────────────────────

type mockProductRepository struct {
	createProductFn   func(ctx context.Context, product models.Product) (models.Product, error)
	findProductByIDFn func(ctx context.Context, productID int64) (models.Product, error)
	listProductsFn    func(ctx context.Context, query models.ProductQuery) ([]models.Product, int64, error)
	updateProductFn   func(ctx context.Context, productID int64, update models.ProductUpdate) error
	replaceProductFn  func(ctx context.Context, productID int64, product models.Product) error
	deleteProductFn   func(ctx context.Context, productID int64) error
}

func (m *mockProductRepository) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	if m.createProductFn != nil {
		return m.createProductFn(ctx, product)
	}
	return product, nil
}

func (m *mockProductRepository) FindProductByID(ctx context.Context, productID int64) (models.Product, error) {
	if m.findProductByIDFn != nil {
		return m.findProductByIDFn(ctx, productID)
	}
	return models.Product{}, store.ErrProductNotFound
}

func (m *mockProductRepository) ListProducts(ctx context.Context, query models.ProductQuery) ([]models.Product, int64, error) {
	if m.listProductsFn != nil {
		return m.listProductsFn(ctx, query)
	}
	return nil, 0, nil
}

func (m *mockProductRepository) UpdateProduct(ctx context.Context, productID int64, update models.ProductUpdate) error {
	if m.updateProductFn != nil {
		return m.updateProductFn(ctx, productID, update)
	}
	return nil
}

func (m *mockProductRepository) ReplaceProduct(ctx context.Context, productID int64, product models.Product) error {
	if m.replaceProductFn != nil {
		return m.replaceProductFn(ctx, productID, product)
	}
	return nil
}

func (m *mockProductRepository) DeleteProduct(ctx context.Context, productID int64) error {
	if m.deleteProductFn != nil {
		return m.deleteProductFn(ctx, productID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.CartRepository
// ─────────────────────────────────────────────

type mockCartRepository struct {
	createCartFn          func(ctx context.Context, userID int64) (models.Cart, error)
	findCartFn            func(ctx context.Context, userID, cartID int64) (models.Cart, error)
	listCartsFn           func(ctx context.Context, userID int64, skip, limit uint64) ([]models.Cart, int64, error)
	addItemFn             func(ctx context.Context, userID, cartID, productID int64) error
	removeItemFn          func(ctx context.Context, userID, cartID, productID int64) error
	clearItemsFn          func(ctx context.Context, userID, cartID int64) error
	deleteCartFn          func(ctx context.Context, userID, cartID int64) error
	deleteCartsByUserIDFn func(ctx context.Context, userID int64) error
}

func (m *mockCartRepository) CreateCart(ctx context.Context, userID int64) (models.Cart, error) {
	if m.createCartFn != nil {
		return m.createCartFn(ctx, userID)
	}
	return models.Cart{UserID: userID}, nil
}

func (m *mockCartRepository) FindCart(ctx context.Context, userID, cartID int64) (models.Cart, error) {
	if m.findCartFn != nil {
		return m.findCartFn(ctx, userID, cartID)
	}
	return models.Cart{}, store.ErrCartNotFound
}

func (m *mockCartRepository) ListCarts(ctx context.Context, userID int64, skip, limit uint64) ([]models.Cart, int64, error) {
	if m.listCartsFn != nil {
		return m.listCartsFn(ctx, userID, skip, limit)
	}
	return nil, 0, nil
}

func (m *mockCartRepository) AddItem(ctx context.Context, userID, cartID, productID int64) error {
	if m.addItemFn != nil {
		return m.addItemFn(ctx, userID, cartID, productID)
	}
	return nil
}

func (m *mockCartRepository) RemoveItem(ctx context.Context, userID, cartID, productID int64) error {
	if m.removeItemFn != nil {
		return m.removeItemFn(ctx, userID, cartID, productID)
	}
	return nil
}

func (m *mockCartRepository) ClearItems(ctx context.Context, userID, cartID int64) error {
	if m.clearItemsFn != nil {
		return m.clearItemsFn(ctx, userID, cartID)
	}
	return nil
}

func (m *mockCartRepository) DeleteCart(ctx context.Context, userID, cartID int64) error {
	if m.deleteCartFn != nil {
		return m.deleteCartFn(ctx, userID, cartID)
	}
	return nil
}

func (m *mockCartRepository) DeleteCartsByUserID(ctx context.Context, userID int64) error {
	if m.deleteCartsByUserIDFn != nil {
		return m.deleteCartsByUserIDFn(ctx, userID)
	}
	return nil
}
