package repository

import (
	"github.com/google/uuid"

	"store-api/models"
)

// UserRepository defines data access for users.
type UserRepository interface {
	All() []models.User
	Get(id uuid.UUID) (models.User, bool)
	FindByEmail(email string) (models.User, bool)
	Create(u models.User) models.User
	Update(id uuid.UUID, apply func(*models.User)) (models.User, bool)
	Delete(id uuid.UUID) bool
	Len() int
}

type memoryUserRepository struct {
	*Collection[models.User, *models.User]
}

// NewMemoryUserRepository returns an in-memory UserRepository.
func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{NewCollection[models.User]()}
}

// FindByEmail returns the user with the given email, case-sensitive exact
// match.
func (r *memoryUserRepository) FindByEmail(email string) (models.User, bool) {
	return r.Find(func(u models.User) bool { return u.Email == email })
}
