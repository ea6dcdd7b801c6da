package repository

import (
	"github.com/google/uuid"

	"store-api/models"
)

// OrderRepository defines data access for orders.
type OrderRepository interface {
	All() []models.Order
	Get(id uuid.UUID) (models.Order, bool)
	Create(o models.Order) models.Order
	Update(id uuid.UUID, apply func(*models.Order)) (models.Order, bool)
	Delete(id uuid.UUID) bool
	Len() int
}

// NewMemoryOrderRepository returns an in-memory OrderRepository.
func NewMemoryOrderRepository() OrderRepository {
	return NewCollection[models.Order]()
}
