package http

import (
	"context"
	"net/http"

	"github.com/dbelyakov/go-market/internal/logger"
	"github.com/dbelyakov/go-market/internal/service"
	"github.com/dbelyakov/go-market/internal/utils"
	"github.com/dbelyakov/go-market/models"
)

// ---- Helpers ----

func newTestHandler(services *service.Services) *Handler {
	return &Handler{
		logger:   logger.Nop(),
		services: services,
	}
}

// injectNopLogger puts a no-op logger into the request context so handlers
// can call logger.FromRequest without the trace-id middleware.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

// injectPrincipal stores an authenticated principal in the request context the
// way the auth middleware would.
func injectPrincipal(r *http.Request, principal models.Principal) *http.Request {
	ctx := context.WithValue(r.Context(), utils.PrincipalCtxKey, principal)
	return r.WithContext(ctx)
}

func shopperPrincipal(userID int64) models.Principal {
	return models.NewPrincipal(userID, models.BaseScopes)
}

func adminPrincipal(userID int64) models.Principal {
	scopes := append(append([]string{}, models.BaseScopes...), models.AdminScopes...)
	return models.NewPrincipal(userID, scopes)
}

// ---- Mock: service.AuthService ----

type mockAuthService struct {
	loginFn        func(ctx context.Context, username, password string) (models.Token, error)
	authenticateFn func(ctx context.Context, tokenString string) (models.Principal, error)
	authorizeFn    func(principal models.Principal, requiredScopes ...string) (int64, error)
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (models.Token, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, username, password)
	}
	return models.Token{}, service.ErrInvalidCredentials
}

func (m *mockAuthService) Authenticate(ctx context.Context, tokenString string) (models.Principal, error) {
	if m.authenticateFn != nil {
		return m.authenticateFn(ctx, tokenString)
	}
	return models.Principal{}, service.ErrUnauthorized
}

func (m *mockAuthService) Authorize(principal models.Principal, requiredScopes ...string) (int64, error) {
	if m.authorizeFn != nil {
		return m.authorizeFn(principal, requiredScopes...)
	}
	for _, scope := range requiredScopes {
		if !principal.HasScope(scope) {
			return 0, service.ErrForbidden
		}
	}
	return principal.UserID, nil
}

// ---- Mock: service.UserService ----

type mockUserService struct {
	registerFn       func(ctx context.Context, req models.CreateUserRequest) (models.User, error)
	getUserFn        func(ctx context.Context, userID int64) (models.User, error)
	listUsersFn      func(ctx context.Context, skip, limit uint64) (models.UserList, error)
	updateUserFn     func(ctx context.Context, userID int64, req models.UpdateUserRequest) (models.User, error)
	deleteUserFn     func(ctx context.Context, userID int64) error
	deleteAllUsersFn func(ctx context.Context) error
}

func (m *mockUserService) Register(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, req)
	}
	return models.User{}, nil
}

func (m *mockUserService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	if m.getUserFn != nil {
		return m.getUserFn(ctx, userID)
	}
	return models.User{UserID: userID}, nil
}

func (m *mockUserService) ListUsers(ctx context.Context, skip, limit uint64) (models.UserList, error) {
	if m.listUsersFn != nil {
		return m.listUsersFn(ctx, skip, limit)
	}
	return models.UserList{Skip: skip, Limit: limit}, nil
}

func (m *mockUserService) UpdateUser(ctx context.Context, userID int64, req models.UpdateUserRequest) (models.User, error) {
	if m.updateUserFn != nil {
		return m.updateUserFn(ctx, userID, req)
	}
	return models.User{UserID: userID}, nil
}

func (m *mockUserService) DeleteUser(ctx context.Context, userID int64) error {
	if m.deleteUserFn != nil {
		return m.deleteUserFn(ctx, userID)
	}
	return nil
}

func (m *mockUserService) DeleteAllUsers(ctx context.Context) error {
	if m.deleteAllUsersFn != nil {
		return m.deleteAllUsersFn(ctx)
	}
	return nil
}

// ---- Mock: service.ProductService ----

type mockProductService struct {
	createProductFn  func(ctx context.Context, req models.CreateProductRequest) (models.Product, error)
	getProductFn     func(ctx context.Context, productID int64) (models.Product, error)
	listProductsFn   func(ctx context.Context, query models.ProductQuery) (models.ProductList, error)
	patchProductFn   func(ctx context.Context, productID int64, update models.ProductUpdate) (models.Product, error)
	replaceProductFn func(ctx context.Context, productID int64, req models.CreateProductRequest) (models.Product, error)
	deleteProductFn  func(ctx context.Context, productID int64) error
}

func (m *mockProductService) CreateProduct(ctx context.Context, req models.CreateProductRequest) (models.Product, error) {
	if m.createProductFn != nil {
		return m.createProductFn(ctx, req)
	}
	return models.Product{Name: req.Name, Price: req.Price}, nil
}

func (m *mockProductService) GetProduct(ctx context.Context, productID int64) (models.Product, error) {
	if m.getProductFn != nil {
		return m.getProductFn(ctx, productID)
	}
	return models.Product{ProductID: productID}, nil
}

func (m *mockProductService) ListProducts(ctx context.Context, query models.ProductQuery) (models.ProductList, error) {
	if m.listProductsFn != nil {
		return m.listProductsFn(ctx, query)
	}
	return models.ProductList{Skip: query.Skip, Limit: query.Limit}, nil
}

func (m *mockProductService) PatchProduct(ctx context.Context, productID int64, update models.ProductUpdate) (models.Product, error) {
	if m.patchProductFn != nil {
		return m.patchProductFn(ctx, productID, update)
	}
	return models.Product{ProductID: productID}, nil
}

func (m *mockProductService) ReplaceProduct(ctx context.Context, productID int64, req models.CreateProductRequest) (models.Product, error) {
	if m.replaceProductFn != nil {
		return m.replaceProductFn(ctx, productID, req)
	}
	return models.Product{ProductID: productID, Name: req.Name, Price: req.Price}, nil
}

func (m *mockProductService) DeleteProduct(ctx context.Context, productID int64) error {
	if m.deleteProductFn != nil {
		return m.deleteProductFn(ctx, productID)
	}
	return nil
}

// ---- Mock: service.CartService ----

type mockCartService struct {
	createCartFn func(ctx context.Context, userID int64) (models.Cart, error)
	getCartFn    func(ctx context.Context, userID, cartID int64) (models.Cart, error)
	listCartsFn  func(ctx context.Context, userID int64, skip, limit uint64) (models.CartList, error)
	addItemFn    func(ctx context.Context, userID, cartID, productID int64) (models.Cart, error)
	removeItemFn func(ctx context.Context, userID, cartID, productID int64) (models.Cart, error)
	clearCartFn  func(ctx context.Context, userID, cartID int64) (models.Cart, error)
	deleteCartFn func(ctx context.Context, userID, cartID int64) error
}

func (m *mockCartService) CreateCart(ctx context.Context, userID int64) (models.Cart, error) {
	if m.createCartFn != nil {
		return m.createCartFn(ctx, userID)
	}
	return models.Cart{UserID: userID, Items: []int64{}}, nil
}

func (m *mockCartService) GetCart(ctx context.Context, userID, cartID int64) (models.Cart, error) {
	if m.getCartFn != nil {
		return m.getCartFn(ctx, userID, cartID)
	}
	return models.Cart{CartID: cartID, UserID: userID, Items: []int64{}}, nil
}

func (m *mockCartService) ListCarts(ctx context.Context, userID int64, skip, limit uint64) (models.CartList, error) {
	if m.listCartsFn != nil {
		return m.listCartsFn(ctx, userID, skip, limit)
	}
	return models.CartList{Skip: skip, Limit: limit}, nil
}

func (m *mockCartService) AddItem(ctx context.Context, userID, cartID, productID int64) (models.Cart, error) {
	if m.addItemFn != nil {
		return m.addItemFn(ctx, userID, cartID, productID)
	}
	return models.Cart{CartID: cartID, UserID: userID, Items: []int64{productID}}, nil
}

func (m *mockCartService) RemoveItem(ctx context.Context, userID, cartID, productID int64) (models.Cart, error) {
	if m.removeItemFn != nil {
		return m.removeItemFn(ctx, userID, cartID, productID)
	}
	return models.Cart{CartID: cartID, UserID: userID, Items: []int64{}}, nil
}

func (m *mockCartService) ClearCart(ctx context.Context, userID, cartID int64) (models.Cart, error) {
	if m.clearCartFn != nil {
		return m.clearCartFn(ctx, userID, cartID)
	}
	return models.Cart{CartID: cartID, UserID: userID, Items: []int64{}}, nil
}

func (m *mockCartService) DeleteCart(ctx context.Context, userID, cartID int64) error {
	if m.deleteCartFn != nil {
		return m.deleteCartFn(ctx, userID, cartID)
	}
	return nil
}
