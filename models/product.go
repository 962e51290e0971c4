package models

import "time"

// Product represents a catalog item. IDs are brand-prefixed and unique
// across the collection.
type Product struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	Price            float64   `json:"price"`
	SalePrice        float64   `json:"salePrice,omitempty"`
	Brand            Brand     `json:"brand"`
	Category         string    `json:"category"`
	Subcategory      string    `json:"subcategory,omitempty"`
	Images           []string  `json:"images"`
	Sizes            []string  `json:"sizes,omitempty"`
	Colors           []string  `json:"colors,omitempty"`
	InStock          bool      `json:"inStock"`
	StockQuantity    int       `json:"stockQuantity"`
	Tags             []string  `json:"tags"`
	Features         []string  `json:"features,omitempty"`
	CareInstructions []string  `json:"careInstructions,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// ProductFilter holds the optional catalog filter parameters. Nil fields
// mean "filter not applied".
type ProductFilter struct {
	Brand    *Brand
	Category *string
	Search   *string
	MinPrice *float64
	MaxPrice *float64
	InStock  *bool
	Page     int
	Limit    int
}

// CreateProductRequest is the payload for POST /api/products.
type CreateProductRequest struct {
	Name             string   `json:"name" binding:"required"`
	Description      string   `json:"description" binding:"required"`
	Price            float64  `json:"price" binding:"required,gte=0"`
	Brand            Brand    `json:"brand" binding:"required,oneof=luxeloom urbanmarket aura-wholesale"`
	Category         string   `json:"category" binding:"required"`
	Subcategory      string   `json:"subcategory"`
	Images           []string `json:"images"`
	Sizes            []string `json:"sizes"`
	Colors           []string `json:"colors"`
	Tags             []string `json:"tags"`
	Features         []string `json:"features"`
	CareInstructions []string `json:"careInstructions"`
}

// UpdateProductRequest is the payload for PUT /api/products/:id. Nil fields
// are left untouched (shallow merge).
type UpdateProductRequest struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	Price         *float64 `json:"price" binding:"omitempty,gte=0"`
	Category      *string  `json:"category"`
	Subcategory   *string  `json:"subcategory"`
	Images        []string `json:"images"`
	Sizes         []string `json:"sizes"`
	Colors        []string `json:"colors"`
	InStock       *bool    `json:"inStock"`
	StockQuantity *int     `json:"stockQuantity" binding:"omitempty,gte=0"`
	Tags          []string `json:"tags"`
}

// Pagination is the metadata block returned with paginated listings.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}
