package repository

import (
	"testing"

	"products-api/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestBuildListQueries(t *testing.T) {
	t.Run("Without search", func(t *testing.T) {
		countQuery, listQuery, args := buildListQueries(model.ListParams{Page: 3, Limit: 10})

		assert.Equal(t, "SELECT COUNT(*) FROM products", countQuery)
		assert.Equal(t,
			"SELECT "+productColumns+" FROM products ORDER BY id ASC LIMIT $1 OFFSET $2",
			listQuery)
		assert.Equal(t, []any{10, 20}, args)
	})

	t.Run("With search", func(t *testing.T) {
		countQuery, listQuery, args := buildListQueries(model.ListParams{Page: 1, Limit: 5, Search: "too"})

		assert.Equal(t, "SELECT COUNT(*) FROM products WHERE name ILIKE $1 OR category ILIKE $1", countQuery)
		assert.Equal(t,
			"SELECT "+productColumns+" FROM products WHERE name ILIKE $1 OR category ILIKE $1 ORDER BY id ASC LIMIT $2 OFFSET $3",
			listQuery)
		assert.Equal(t, []any{"%too%", 5, 0}, args)
	})
}

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"plain", "plain"},
		{"100%", `100\%`},
		{"a_b", `a\_b`},
		{`back\slash`, `back\\slash`},
		{`%_\`, `\%\_\\`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, escapeLike(tt.in))
		})
	}
}
