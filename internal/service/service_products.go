package service

import (
	"context"
	"fmt"

	"github.com/dbelyakov/go-market/internal/logger"
	"github.com/dbelyakov/go-market/internal/store"
	"github.com/dbelyakov/go-market/models"
)

// productService is the concrete implementation of ProductService.
type productService struct {
	productRepository store.ProductRepository
	logger            *logger.Logger
}

// NewProductService constructs a ProductService wired to the given repository.
func NewProductService(productRepository store.ProductRepository, logger *logger.Logger) ProductService {
	return &productService{
		productRepository: productRepository,
		logger:            logger,
	}
}

// CreateProduct adds a new catalog entry.
func (s *productService) CreateProduct(ctx context.Context, req models.CreateProductRequest) (models.Product, error) {
	log := logger.FromContext(ctx)

	if req.Name == "" {
		log.Error().Msg("invalid product data provided")
		return models.Product{}, ErrInvalidDataProvided
	}

	created, err := s.productRepository.CreateProduct(ctx, models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		log.Err(err).Str("name", req.Name).Msg("product creation ended with error")
		return models.Product{}, fmt.Errorf("product creation ended with error: %w", err)
	}

	return created, nil
}

// GetProduct retrieves one catalog entry by id.
func (s *productService) GetProduct(ctx context.Context, productID int64) (models.Product, error) {
	found, err := s.productRepository.FindProductByID(ctx, productID)
	if err != nil {
		return models.Product{}, fmt.Errorf("product search by id failed: %w", err)
	}

	return found, nil
}

// ListProducts returns one page of catalog entries matching the already
// validated query, together with the echoed pagination parameters and the
// total result count.
func (s *productService) ListProducts(ctx context.Context, query models.ProductQuery) (models.ProductList, error) {
	products, total, err := s.productRepository.ListProducts(ctx, query)
	if err != nil {
		return models.ProductList{}, fmt.Errorf("product listing failed: %w", err)
	}

	return models.ProductList{
		Skip:         query.Skip,
		Limit:        query.Limit,
		TotalResults: total,
		Products:     products,
	}, nil
}

// PatchProduct applies the non-nil fields of update and returns the updated
// record. An empty update returns the current record unchanged, provided it
// exists.
func (s *productService) PatchProduct(ctx context.Context, productID int64, update models.ProductUpdate) (models.Product, error) {
	log := logger.FromContext(ctx)

	if update.IsEmpty() {
		return s.GetProduct(ctx, productID)
	}

	if err := s.productRepository.UpdateProduct(ctx, productID, update); err != nil {
		log.Err(err).Int64("id", productID).Msg("product update ended with error")
		return models.Product{}, fmt.Errorf("product update ended with error: %w", err)
	}

	return s.GetProduct(ctx, productID)
}

// ReplaceProduct overwrites every mutable field of the record and returns the
// replaced version.
func (s *productService) ReplaceProduct(ctx context.Context, productID int64, req models.CreateProductRequest) (models.Product, error) {
	log := logger.FromContext(ctx)

	if req.Name == "" {
		log.Error().Msg("invalid product data provided")
		return models.Product{}, ErrInvalidDataProvided
	}

	err := s.productRepository.ReplaceProduct(ctx, productID, models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		log.Err(err).Int64("id", productID).Msg("product replacement ended with error")
		return models.Product{}, fmt.Errorf("product replacement ended with error: %w", err)
	}

	return s.GetProduct(ctx, productID)
}

// DeleteProduct removes one catalog entry by id.
func (s *productService) DeleteProduct(ctx context.Context, productID int64) error {
	log := logger.FromContext(ctx)

	if err := s.productRepository.DeleteProduct(ctx, productID); err != nil {
		log.Err(err).Int64("id", productID).Msg("product deletion ended with error")
		return fmt.Errorf("product deletion ended with error: %w", err)
	}

	return nil
}
