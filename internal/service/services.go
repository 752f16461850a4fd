package service

import (
	"github.com/dbelyakov/go-market/internal/config"
	"github.com/dbelyakov/go-market/internal/logger"
	"github.com/dbelyakov/go-market/internal/store"
)

// Services bundles the business layer consumed by the transport handlers.
type Services struct {
	AuthService    AuthService
	UserService    UserService
	ProductService ProductService
	CartService    CartService
}

// NewServices wires every service to its repositories and configuration.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, storages.PermissionRepository, cfg.Auth, logger),
		UserService:    NewUserService(storages.UserRepository, storages.PermissionRepository, storages.CartRepository, logger),
		ProductService: NewProductService(storages.ProductRepository, logger),
		CartService:    NewCartService(storages.CartRepository, storages.ProductRepository, logger),
	}
}
