package repository

import (
	"context"

	"products-api/internal/model"
)

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// Create inserts a product and returns the stored row.
	Create(ctx context.Context, p *model.NewProduct) (*model.Product, error)

	// GetByID retrieves a single product by its ID.
	// Returns nil without an error when the product does not exist.
	GetByID(ctx context.Context, id int64) (*model.Product, error)

	// Update applies the non-nil fields of u and refreshes updated_at.
	// Returns nil without an error when the product does not exist.
	Update(ctx context.Context, id int64, u *model.ProductUpdate) (*model.Product, error)

	// Delete removes a product. It reports whether a row was removed.
	Delete(ctx context.Context, id int64) (bool, error)

	// List returns one page of products in insertion order and the total
	// number of products matching the search.
	List(ctx context.Context, params model.ListParams) ([]model.Product, int64, error)

	// Count returns the number of stored products.
	Count(ctx context.Context) (int64, error)

	// BulkCreate copies many products into the table in one operation.
	BulkCreate(ctx context.Context, products []model.NewProduct) (int64, error)
}
