package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/dbelyakov/go-market/internal/logger"
	"github.com/dbelyakov/go-market/models"
)

// priceFilterOperators maps the wire-level comparison operator names onto the
// SQL operators used in the listing query WHERE clause.
var priceFilterOperators = map[string]string{
	models.PriceFilterGT:  ">",
	models.PriceFilterLT:  "<",
	models.PriceFilterGTE: ">=",
	models.PriceFilterLTE: "<=",
}

// productRepository is the PostgreSQL-backed implementation of
// [ProductRepository]. The listing query is assembled dynamically with
// squirrel because the filter, sort and pagination parts are all optional.
type productRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProductRepository constructs a [ProductRepository] backed by the
// provided database connection and logger.
func NewProductRepository(db *DB, logger *logger.Logger) ProductRepository {
	logger.Debug().Msg("creating product repository")
	return &productRepository{
		db:     db,
		logger: logger,
	}
}

// CreateProduct persists a new catalog entry and returns it with the
// server-assigned id.
func (r *productRepository) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	log := logger.FromContext(ctx)

	var created models.Product
	row := r.db.QueryRowContext(ctx, createProduct, product.Name, product.Description, product.Price)
	if err := row.Scan(&created.ProductID, &created.Name, &created.Description, &created.Price); err != nil {
		log.Err(err).Str("func", "*productRepository.CreateProduct").Msg("error: creating product")
		return models.Product{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindProductByID retrieves the catalog entry with the given id.
// An empty result set maps to [ErrProductNotFound].
func (r *productRepository) FindProductByID(ctx context.Context, productID int64) (models.Product, error) {
	log := logger.FromContext(ctx)

	var found models.Product
	row := r.db.QueryRowContext(ctx, findProductByID, productID)
	if err := row.Scan(&found.ProductID, &found.Name, &found.Description, &found.Price); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Product{}, ErrProductNotFound
		}

		log.Err(err).Str("func", "*productRepository.FindProductByID").Msg("error: finding product")
		return models.Product{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// ListProducts returns one page of catalog entries matching the query, plus
// the total number of matches ignoring pagination.
//
// The caller is responsible for validating the query: by the time it reaches
// the repository, Sort/Order are either both set or both empty and the filter
// operator is one of the supported comparison names.
func (r *productRepository) ListProducts(ctx context.Context, query models.ProductQuery) ([]models.Product, int64, error) {
	log := logger.FromContext(ctx)

	where := sq.And{}
	if query.Filter != nil {
		op, ok := priceFilterOperators[query.Filter.Op]
		if !ok {
			return nil, 0, fmt.Errorf("%w: unknown price filter operator %q", ErrBuildingSQLQuery, query.Filter.Op)
		}
		where = append(where, sq.Expr(fmt.Sprintf("price %s ?", op), query.Filter.Value))
	}

	countBuilder := sq.Select("COUNT(*)").From("products").PlaceholderFormat(sq.Dollar)
	if len(where) > 0 {
		countBuilder = countBuilder.Where(where)
	}

	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*productRepository.ListProducts").Msg("error: building count query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*productRepository.ListProducts").Msg("error: counting products")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	listBuilder := sq.Select("product_id", "name", "description", "price").
		From("products").
		PlaceholderFormat(sq.Dollar)
	if len(where) > 0 {
		listBuilder = listBuilder.Where(where)
	}
	if query.Sort != "" {
		direction := "ASC"
		if query.Order == models.OrderDescending {
			direction = "DESC"
		}
		listBuilder = listBuilder.OrderBy(query.Sort + " " + direction)
	} else {
		listBuilder = listBuilder.OrderBy("product_id ASC")
	}
	listBuilder = listBuilder.Offset(query.Skip).Limit(query.Limit)

	listQuery, listArgs, err := listBuilder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*productRepository.ListProducts").Msg("error: building list query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, listQuery, listArgs...)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.ListProducts").Msg("error: listing products")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	products := make([]models.Product, 0, query.Limit)
	for rows.Next() {
		var product models.Product
		if err := rows.Scan(&product.ProductID, &product.Name, &product.Description, &product.Price); err != nil {
			log.Err(err).Str("func", "*productRepository.ListProducts").Msg("error: scanning product row")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return products, total, nil
}

// UpdateProduct applies the non-nil fields of update to the catalog entry.
// Zero affected rows maps to [ErrProductNotFound]; an empty update is a no-op
// handled by the service layer before it reaches the repository.
func (r *productRepository) UpdateProduct(ctx context.Context, productID int64, update models.ProductUpdate) error {
	log := logger.FromContext(ctx)

	builder := sq.Update("products").
		Where(sq.Eq{"product_id": productID}).
		PlaceholderFormat(sq.Dollar)

	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
	}
	if update.Price != nil {
		builder = builder.Set("price", *update.Price)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*productRepository.UpdateProduct").Msg("error: building update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.UpdateProduct").Msg("error: updating product")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrProductNotFound
	}

	return nil
}

// ReplaceProduct overwrites every mutable field of the catalog entry.
// Zero affected rows maps to [ErrProductNotFound].
func (r *productRepository) ReplaceProduct(ctx context.Context, productID int64, product models.Product) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, replaceProduct, productID, product.Name, product.Description, product.Price)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.ReplaceProduct").Msg("error: replacing product")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrProductNotFound
	}

	return nil
}

// DeleteProduct removes the catalog entry with the given id.
// Zero affected rows maps to [ErrProductNotFound].
func (r *productRepository) DeleteProduct(ctx context.Context, productID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteProduct, productID)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.DeleteProduct").Msg("error: deleting product")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrProductNotFound
	}

	return nil
}
