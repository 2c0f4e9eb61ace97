//go:build ignore

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"products-api/internal/config"

	"github.com/jackc/pgx/v5"
)

// Connects with the same environment as the API server and reports the
// database name, the available databases and the products row count.
// Usage: go run scripts/check_db_connection.go
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn, err := pgx.Connect(ctx, cfg.Database.ConnectionString())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(ctx)

	var dbName string
	if err := conn.QueryRow(ctx, "SELECT current_database()").Scan(&dbName); err != nil {
		fmt.Fprintf(os.Stderr, "QueryRow failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Successfully connected to database: %s\n", dbName)

	rows, err := conn.Query(ctx, "SELECT datname FROM pg_database WHERE datistemplate = false")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Query failed: %v\n", err)
		os.Exit(1)
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Scan failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\nAvailable databases:")
	for _, name := range names {
		fmt.Printf("  - %s\n", name)
	}

	var count int64
	if err := conn.QueryRow(ctx, "SELECT COUNT(*) FROM products").Scan(&count); err != nil {
		fmt.Println("\nproducts table not found (it is created when the API starts)")
		return
	}
	fmt.Printf("\nproducts table has %d rows\n", count)
}
