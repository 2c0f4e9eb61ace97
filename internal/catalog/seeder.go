package catalog

import (
	"context"
	"fmt"
	"sync"

	"products-api/internal/model"

	"github.com/rs/zerolog"
)

// Seeder fills an empty products table from seed files.
type Seeder struct {
	loader Loader
	store  Store
	logger zerolog.Logger
}

// NewSeeder creates a new seeder.
func NewSeeder(loader Loader, store Store, logger zerolog.Logger) *Seeder {
	return &Seeder{
		loader: loader,
		store:  store,
		logger: logger.With().Str("component", "seeder").Logger(),
	}
}

// Seed loads every file concurrently and inserts the records in file order.
// Nothing is inserted when the table already holds products or when any
// file fails to load. It returns the number of inserted rows.
func (s *Seeder) Seed(ctx context.Context, files []string) (int64, error) {
	existing, err := s.store.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	if existing > 0 {
		s.logger.Info().Int64("existing", existing).Msg("products table not empty, skipping seed")
		return 0, nil
	}

	type loadResult struct {
		index    int
		products []model.NewProduct
		err      error
	}

	resultChan := make(chan loadResult, len(files))
	var wg sync.WaitGroup

	for i, path := range files {
		wg.Add(1)
		go func(index int, path string) {
			defer wg.Done()

			products, err := s.loader.Load(ctx, path)
			resultChan <- loadResult{index: index, products: products, err: err}
		}(i, path)
	}

	wg.Wait()
	close(resultChan)

	results := make([]loadResult, len(files))
	for result := range resultChan {
		results[result.index] = result
	}

	var all []model.NewProduct
	for i, result := range results {
		if result.err != nil {
			return 0, fmt.Errorf("failed to load seed file %s: %w", files[i], result.err)
		}
		all = append(all, result.products...)
	}

	inserted, err := s.store.BulkCreate(ctx, all)
	if err != nil {
		return 0, fmt.Errorf("failed to insert seed products: %w", err)
	}

	s.logger.Info().
		Int("file_count", len(files)).
		Int64("inserted", inserted).
		Msg("product catalogue seeded")

	return inserted, nil
}
