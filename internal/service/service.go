package service

import (
	"context"

	"products-api/internal/model"
)

// ProductService defines operations for product management.
type ProductService interface {
	// Create validates the request and stores a new product.
	Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id int64) (*model.Product, error)

	// Update merges the provided fields of req over the stored product.
	Update(ctx context.Context, id int64, req *model.ProductRequest) (*model.Product, error)

	// Delete permanently removes a product.
	Delete(ctx context.Context, id int64) error

	// List returns a page of products, optionally filtered by a search term.
	List(ctx context.Context, params model.ListParams) (*model.ProductPage, error)
}
