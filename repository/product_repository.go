package repository

import (
	"github.com/google/uuid"

	"store-api/models"
)

// ProductRepository defines data access for products.
type ProductRepository interface {
	All() []models.Product
	Get(id uuid.UUID) (models.Product, bool)
	Create(p models.Product) models.Product
	Update(id uuid.UUID, apply func(*models.Product)) (models.Product, bool)
	Delete(id uuid.UUID) bool
	Len() int
}

// NewMemoryProductRepository returns an in-memory ProductRepository.
func NewMemoryProductRepository() ProductRepository {
	return NewCollection[models.Product]()
}
