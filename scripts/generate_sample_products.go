//go:build ignore

package main

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

type sampleProduct struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category"`
}

// Writes data/seeds/products.gz, one JSON product per line.
// Usage: go run scripts/generate_sample_products.go
// Then start the API with SEED_ENABLED=true SEED_FILES=data/seeds/products.gz
func main() {
	dataDir := "data/seeds"

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	products := []sampleProduct{
		{Name: "Claw Hammer", Price: 14.99, Description: "16oz steel claw hammer", Category: "Tools"},
		{Name: "Cordless Drill", Price: 89.00, Description: "18V drill with two batteries", Category: "Tools"},
		{Name: "Tape Measure", Price: 7.50, Category: "Tools"},
		{Name: "Toothbrush", Price: 2.99, Description: "Soft bristles", Category: "Personal Care"},
		{Name: "Green Apples", Price: 3.20, Description: "1kg bag", Category: "Food"},
		{Name: "Sourdough Loaf", Price: 4.75, Category: "Food"},
		{Name: "Espresso Beans", Price: 11.00, Description: "Dark roast, 500g", Category: "Food"},
		{Name: "Desk Lamp", Price: 24.90, Description: "LED, adjustable arm", Category: "Home"},
		{Name: "Throw Pillow", Price: 12.00, Category: "Home"},
		{Name: "Gift Card", Price: 0, Description: "Value loaded at checkout", Category: "Gifts"},
		{Name: "Notebook", Price: 5.25, Description: "A5 dotted, 120 pages", Category: "Stationery"},
		{Name: "Fountain Pen", Price: 32.00, Category: "Stationery"},
	}

	filePath := filepath.Join(dataDir, "products.gz")
	if err := createSeedFile(filePath, products); err != nil {
		log.Fatalf("Failed to create %s: %v", filePath, err)
	}

	fmt.Printf("Created %s with %d products\n", filePath, len(products))
}

func createSeedFile(filePath string, products []sampleProduct) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	gzipWriter := gzip.NewWriter(file)
	encoder := json.NewEncoder(gzipWriter)
	for _, p := range products {
		if err := encoder.Encode(p); err != nil {
			return fmt.Errorf("failed to write product: %w", err)
		}
	}

	return gzipWriter.Close()
}
