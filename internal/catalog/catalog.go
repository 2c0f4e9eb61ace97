// Package catalog loads product seed files and bulk inserts them into an
// empty products table.
package catalog

import (
	"context"

	"products-api/internal/model"
)

// Loader defines the interface for loading product seed files.
type Loader interface {
	// Load reads a gzipped seed file with one JSON product per line.
	// Every record is validated with the same rules as a create request.
	Load(ctx context.Context, path string) ([]model.NewProduct, error)
}

// Store is the subset of the product repository used for seeding.
type Store interface {
	Count(ctx context.Context) (int64, error)
	BulkCreate(ctx context.Context, products []model.NewProduct) (int64, error)
}
