package store

import "github.com/dbelyakov/go-market/internal/logger"

// Storages bundles every repository backed by the shared database connection.
type Storages struct {
	UserRepository       UserRepository
	PermissionRepository PermissionRepository
	ProductRepository    ProductRepository
	CartRepository       CartRepository
}

// NewStorages constructs all repositories on top of the given connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:       NewUserRepository(db, logger),
		PermissionRepository: NewPermissionRepository(db, logger),
		ProductRepository:    NewProductRepository(db, logger),
		CartRepository:       NewCartRepository(db, logger),
	}
}
