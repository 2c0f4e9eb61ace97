package service

import (
	"context"
	"fmt"
	"math"

	"products-api/internal/model"
	"products-api/internal/repository"

	"github.com/rs/zerolog"
)

// Pagination defaults applied when a caller omits or sends out-of-range values.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// Create validates the request and stores a new product.
func (s *productService) Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error) {
	newProduct, err := req.ValidateCreate()
	if err != nil {
		s.logger.Debug().Err(err).Msg("create request rejected")
		return nil, err
	}

	product, err := s.productRepo.Create(ctx, newProduct)
	if err != nil {
		s.logger.Error().Err(err).Str("name", newProduct.Name).Msg("failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().
		Int64("product_id", product.ID).
		Str("category", product.Category).
		Msg("product created")

	return product, nil
}

// GetByID retrieves a single product by ID.
func (s *productService) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to get product by ID")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Int64("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	return product, nil
}

// Update checks the product exists before validating the request, so an
// unknown ID is reported as not found even when the body is invalid.
func (s *productService) Update(ctx context.Context, id int64, req *model.ProductRequest) (*model.Product, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	update, err := req.ValidateUpdate()
	if err != nil {
		s.logger.Debug().Err(err).Int64("product_id", id).Msg("update request rejected")
		return nil, err
	}

	// Nothing to change, so updated_at is left alone.
	if update.Empty() {
		s.logger.Debug().Int64("product_id", id).Msg("empty update, product unchanged")
		return existing, nil
	}

	product, err := s.productRepo.Update(ctx, id, update)
	if err != nil {
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to update product")
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	// Deleted between the lookup and the update.
	if product == nil {
		return nil, model.ErrProductNotFound
	}

	s.logger.Info().Int64("product_id", id).Msg("product updated")

	return product, nil
}

// Delete permanently removes a product.
func (s *productService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if !deleted {
		s.logger.Debug().Int64("product_id", id).Msg("product to delete not found")
		return model.ErrProductNotFound
	}

	s.logger.Info().Int64("product_id", id).Msg("product deleted")

	return nil
}

// List returns a page of products, optionally filtered by a search term.
func (s *productService) List(ctx context.Context, params model.ListParams) (*model.ProductPage, error) {
	params = NormalizeListParams(params)

	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		s.logger.Error().Err(err).
			Int("page", params.Page).
			Int("limit", params.Limit).
			Str("search", params.Search).
			Msg("failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	if products == nil {
		products = []model.Product{}
	}

	s.logger.Debug().
		Int("count", len(products)).
		Int64("total", total).
		Int("page", params.Page).
		Int("limit", params.Limit).
		Msg("listed products")

	return &model.ProductPage{
		TotalItems:  total,
		TotalPages:  TotalPages(total, params.Limit),
		CurrentPage: params.Page,
		Products:    products,
	}, nil
}

// NormalizeListParams replaces a page below 1 with DefaultPage and a limit
// below 1 with DefaultLimit, and caps the limit at MaxLimit. The page is
// capped so that its offset fits in an int.
func NormalizeListParams(params model.ListParams) model.ListParams {
	if params.Page < 1 {
		params.Page = DefaultPage
	}
	if params.Limit < 1 {
		params.Limit = DefaultLimit
	}
	if params.Limit > MaxLimit {
		params.Limit = MaxLimit
	}
	if maxPage := math.MaxInt / params.Limit; params.Page > maxPage {
		params.Page = maxPage
	}
	return params
}

// TotalPages returns ceil(total/limit).
func TotalPages(total int64, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
