package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"products-api/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const productColumns = "id, name, price, description, category, created_at, updated_at"

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// Create inserts a product and returns the stored row.
func (r *productRepository) Create(ctx context.Context, p *model.NewProduct) (*model.Product, error) {
	query := `
		INSERT INTO products (name, price, description, category)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + productColumns

	rows, _ := r.pool.Query(ctx, query, p.Name, p.Price, p.Description, p.Category)
	product, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[model.Product])
	if err != nil {
		r.logger.Error().Err(err).Str("name", p.Name).Msg("failed to insert product")
		return nil, fmt.Errorf("failed to insert product: %w", err)
	}

	r.logger.Debug().Int64("product_id", product.ID).Msg("product inserted")

	return product, nil
}

// GetByID retrieves a single product by its ID.
func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE id = $1
	`

	rows, _ := r.pool.Query(ctx, query, id)
	product, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[model.Product])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("product_id", id).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return product, nil
}

// Update applies the non-nil fields of u and refreshes updated_at.
func (r *productRepository) Update(ctx context.Context, id int64, u *model.ProductUpdate) (*model.Product, error) {
	query := `
		UPDATE products SET
			name = COALESCE($2::text, name),
			price = COALESCE($3::double precision, price),
			description = COALESCE($4::text, description),
			category = COALESCE($5::text, category),
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + productColumns

	rows, _ := r.pool.Query(ctx, query, id, u.Name, u.Price, u.Description, u.Category)
	product, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[model.Product])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("product_id", id).Msg("product to update not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to update product")
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}

// Delete removes a product. It reports whether a row was removed.
func (r *productRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to delete product")
		return false, fmt.Errorf("failed to delete product: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// List returns one page of products and the total match count. Both
// statements are sent as a single batch.
func (r *productRepository) List(ctx context.Context, params model.ListParams) ([]model.Product, int64, error) {
	countQuery, listQuery, args := buildListQueries(params)

	batch := &pgx.Batch{}
	batch.Queue(countQuery, args[:len(args)-2]...)
	batch.Queue(listQuery, args...)

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	var total int64
	if err := results.QueryRow().Scan(&total); err != nil {
		r.logger.Error().Err(err).Str("search", params.Search).Msg("failed to count products")
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	rows, _ := results.Query()
	products, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Product])
	if err != nil {
		r.logger.Error().Err(err).
			Int("limit", params.Limit).
			Int("offset", params.Offset()).
			Msg("failed to query products")
		return nil, 0, fmt.Errorf("failed to query products: %w", err)
	}

	return products, total, nil
}

// Count returns the number of stored products.
func (r *productRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM products").Scan(&count); err != nil {
		r.logger.Error().Err(err).Msg("failed to count products")
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

// BulkCreate copies many products into the table in one operation.
func (r *productRepository) BulkCreate(ctx context.Context, products []model.NewProduct) (int64, error) {
	if len(products) == 0 {
		return 0, nil
	}

	copied, err := r.pool.CopyFrom(ctx,
		pgx.Identifier{"products"},
		[]string{"name", "price", "description", "category"},
		pgx.CopyFromSlice(len(products), func(i int) ([]any, error) {
			p := products[i]
			return []any{p.Name, p.Price, p.Description, p.Category}, nil
		}),
	)
	if err != nil {
		r.logger.Error().Err(err).Int("count", len(products)).Msg("failed to copy products")
		return 0, fmt.Errorf("failed to copy products: %w", err)
	}

	return copied, nil
}

// buildListQueries returns the count and page statements for params. The
// list arguments end with limit and offset; the count statement takes the
// same arguments without those two.
func buildListQueries(params model.ListParams) (countQuery, listQuery string, args []any) {
	where := ""
	if params.Search != "" {
		args = append(args, "%"+escapeLike(params.Search)+"%")
		where = " WHERE name ILIKE $1 OR category ILIKE $1"
	}

	countQuery = "SELECT COUNT(*) FROM products" + where
	listQuery = fmt.Sprintf(
		"SELECT %s FROM products%s ORDER BY id ASC LIMIT $%d OFFSET $%d",
		productColumns, where, len(args)+1, len(args)+2,
	)
	args = append(args, params.Limit, params.Offset())

	return countQuery, listQuery, args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
