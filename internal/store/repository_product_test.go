package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/dbelyakov/go-market/internal/logger"
	"github.com/dbelyakov/go-market/models"
)

func newTestProductRepo(t *testing.T) (*productRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &productRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestCreateProduct_Success(t *testing.T) {
	repo, mock, db := newTestProductRepo(t)
	defer db.Close()

	ctx := context.Background()
	description := "a fine widget"

	rows := sqlmock.
		NewRows([]string{"product_id", "name", "description", "price"}).
		AddRow(1, "widget", description, 9.99)

	mock.ExpectQuery("INSERT INTO products").
		WithArgs("widget", &description, 9.99).
		WillReturnRows(rows)

	created, err := repo.CreateProduct(ctx, models.Product{Name: "widget", Description: &description, Price: 9.99})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ProductID != 1 {
		t.Errorf("expected ProductID=1, got %d", created.ProductID)
	}
}

func TestFindProductByID_NotFound(t *testing.T) {
	repo, mock, db := newTestProductRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("FROM products").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindProductByID(ctx, 404)
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestListProducts_DefaultOrdering(t *testing.T) {
	repo, mock, db := newTestProductRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM products`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	rows := sqlmock.
		NewRows([]string{"product_id", "name", "description", "price"}).
		AddRow(1, "widget", nil, 9.99).
		AddRow(2, "gadget", nil, 19.99)

	mock.ExpectQuery("ORDER BY product_id ASC LIMIT 100 OFFSET 0").
		WillReturnRows(rows)

	products, total, err := repo.ListProducts(ctx, models.ProductQuery{Skip: 0, Limit: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 2 {
		t.Errorf("expected total=2, got %d", total)
	}
	if len(products) != 2 {
		t.Errorf("expected 2 products, got %d", len(products))
	}
	if products[0].Description != nil {
		t.Errorf("expected nil description, got %v", *products[0].Description)
	}
}

func TestListProducts_SortAndPriceFilter(t *testing.T) {
	repo, mock, db := newTestProductRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM products WHERE \(price > \$1\)`).
		WithArgs(10.0).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	rows := sqlmock.
		NewRows([]string{"product_id", "name", "description", "price"}).
		AddRow(2, "gadget", nil, 19.99)

	mock.ExpectQuery(`WHERE \(price > \$1\) ORDER BY price DESC LIMIT 5 OFFSET 0`).
		WithArgs(10.0).
		WillReturnRows(rows)

	products, total, err := repo.ListProducts(ctx, models.ProductQuery{
		Skip:   0,
		Limit:  5,
		Sort:   models.SortByPrice,
		Order:  models.OrderDescending,
		Filter: &models.PriceFilter{Op: models.PriceFilterGT, Value: 10.0},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 1 {
		t.Errorf("expected total=1, got %d", total)
	}
	if len(products) != 1 || products[0].Price != 19.99 {
		t.Errorf("expected the single filtered product, got %v", products)
	}
}

func TestListProducts_UnknownFilterOperator(t *testing.T) {
	repo, _, db := newTestProductRepo(t)
	defer db.Close()

	ctx := context.Background()

	_, _, err := repo.ListProducts(ctx, models.ProductQuery{
		Limit:  10,
		Filter: &models.PriceFilter{Op: "like", Value: 1},
	})
	if !errors.Is(err, ErrBuildingSQLQuery) {
		t.Fatalf("expected ErrBuildingSQLQuery, got %v", err)
	}
}

func TestUpdateProduct_NotFound(t *testing.T) {
	repo, mock, db := newTestProductRepo(t)
	defer db.Close()

	ctx := context.Background()
	newName := "gadget"

	mock.ExpectExec("UPDATE products SET name").
		WithArgs(newName, int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateProduct(ctx, 404, models.ProductUpdate{Name: &newName})
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestReplaceProduct_Success(t *testing.T) {
	repo, mock, db := newTestProductRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE products").
		WithArgs(int64(1), "gadget", nil, 19.99).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.ReplaceProduct(ctx, 1, models.Product{Name: "gadget", Price: 19.99})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteProduct_NotFound(t *testing.T) {
	repo, mock, db := newTestProductRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM products").
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteProduct(ctx, 404)
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
