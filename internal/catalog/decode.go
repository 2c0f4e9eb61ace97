package catalog

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"products-api/internal/model"
)

// cancelCheckInterval is how many lines are read between context checks.
const cancelCheckInterval = 10_000

// decodeRecords reads gzipped newline-delimited JSON from r. Blank lines are
// skipped; the first invalid record aborts with its line number.
func decodeRecords(ctx context.Context, r io.Reader, source string) ([]model.NewProduct, error) {
	gzipReader, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader for %s: %w", source, err)
	}
	defer gzipReader.Close()

	scanner := bufio.NewScanner(gzipReader)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var products []model.NewProduct
	line := 0
	for scanner.Scan() {
		line++
		if line%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}

		var req model.ProductRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			return nil, fmt.Errorf("%s line %d: %w", source, line, model.ErrInvalidJSON)
		}
		p, err := req.ValidateCreate()
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", source, line, err)
		}
		products = append(products, *p)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading seed file %s: %w", source, err)
	}

	return products, nil
}
