package model

import "time"

// DefaultDescription is stored when a product is created without a description.
const DefaultDescription = "No description provided"

// Product represents a catalogue product.
type Product struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Price       float64   `json:"price" db:"price"`
	Description string    `json:"description" db:"description"`
	Category    string    `json:"category" db:"category"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// NewProduct holds validated fields for inserting a product.
type NewProduct struct {
	Name        string
	Price       float64
	Description string
	Category    string
}

// ProductUpdate holds validated fields for a partial update.
// Nil fields keep their stored value.
type ProductUpdate struct {
	Name        *string
	Price       *float64
	Description *string
	Category    *string
}

// Empty reports whether the update changes no field.
func (u ProductUpdate) Empty() bool {
	return u.Name == nil && u.Price == nil && u.Description == nil && u.Category == nil
}

// ListParams describes a page of the product listing.
type ListParams struct {
	Page   int
	Limit  int
	Search string
}

// Offset returns the number of rows to skip for the page.
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// ProductPage is a page of products plus the total number of matches.
type ProductPage struct {
	TotalItems  int64     `json:"totalItems"`
	TotalPages  int       `json:"totalPages"`
	CurrentPage int       `json:"currentPage"`
	Products    []Product `json:"products"`
}

// ProductResponse wraps a product with a human readable message.
type ProductResponse struct {
	Message string   `json:"message"`
	Product *Product `json:"product"`
}

// MessageResponse carries a confirmation message only.
type MessageResponse struct {
	Message string `json:"message"`
}
