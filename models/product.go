package models

// ProductCategory is the fixed set of product categories.
type ProductCategory string

const (
	CategoryElectronics ProductCategory = "electronics"
	CategoryClothing    ProductCategory = "clothing"
	CategoryBooks       ProductCategory = "books"
	CategoryHome        ProductCategory = "home"
)

// Product represents a catalog item. Names are not unique.
type Product struct {
	Meta
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       float64         `json:"price"`
	Category    ProductCategory `json:"category"`
	InStock     bool            `json:"inStock"`
}

// CreateProductRequest is the payload for POST /products. Price is a pointer
// so that an explicit 0 passes the required check.
type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required,min=1,max=100"`
	Description string          `json:"description" binding:"omitempty,max=500"`
	Price       *float64        `json:"price" binding:"required,gte=0"`
	Category    ProductCategory `json:"category" binding:"required,oneof=electronics clothing books home"`
	InStock     *bool           `json:"inStock"`
}

// ReplaceProductRequest is the payload for PUT /products/:id.
type ReplaceProductRequest struct {
	Name        string          `json:"name" binding:"required,min=1,max=100"`
	Description string          `json:"description" binding:"omitempty,max=500"`
	Price       *float64        `json:"price" binding:"required,gte=0"`
	Category    ProductCategory `json:"category" binding:"required,oneof=electronics clothing books home"`
	InStock     *bool           `json:"inStock" binding:"required"`
}

// PatchProductRequest is the payload for PATCH /products/:id.
type PatchProductRequest struct {
	Name        *string          `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string          `json:"description" binding:"omitempty,max=500"`
	Price       *float64         `json:"price" binding:"omitempty,gte=0"`
	Category    *ProductCategory `json:"category" binding:"omitempty,oneof=electronics clothing books home"`
	InStock     *bool            `json:"inStock"`
}

// ProductFilters holds the list query filters for products. Price bounds
// are inclusive.
type ProductFilters struct {
	Name     string // case-insensitive substring match
	Category string // exact match
	MinPrice *float64
	MaxPrice *float64
	InStock  *bool
}
