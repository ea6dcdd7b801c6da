package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"store-api/models"
	"store-api/repository"
)

// UserService defines the business logic for users.
type UserService interface {
	List(ctx context.Context, filters models.UserFilters, page, limit int) ([]models.User, Pagination, *ServiceError)
	Get(ctx context.Context, id uuid.UUID) (models.User, *ServiceError)
	Create(ctx context.Context, req *models.CreateUserRequest) (models.User, *ServiceError)
	Replace(ctx context.Context, id uuid.UUID, req *models.ReplaceUserRequest) (models.User, *ServiceError)
	Patch(ctx context.Context, id uuid.UUID, req *models.PatchUserRequest) (models.User, *ServiceError)
	Delete(ctx context.Context, id uuid.UUID) *ServiceError
}

type userServiceImpl struct {
	repo   repository.UserRepository
	logger *zap.Logger
}

// NewUserService creates a new UserService.
func NewUserService(repo repository.UserRepository, logger *zap.Logger) UserService {
	return &userServiceImpl{repo: repo, logger: logger}
}

// List returns the filtered then paginated users.
func (s *userServiceImpl) List(_ context.Context, filters models.UserFilters, page, limit int) ([]models.User, Pagination, *ServiceError) {
	var filtered []models.User
	nameFilter := strings.ToLower(filters.Name)
	for _, u := range s.repo.All() {
		if nameFilter != "" && !strings.Contains(strings.ToLower(u.Name), nameFilter) {
			continue
		}
		if filters.Email != "" && u.Email != filters.Email {
			continue
		}
		filtered = append(filtered, u)
	}

	users, meta := paginate(filtered, page, limit)
	return users, meta, nil
}

// Get returns the user with the given id.
func (s *userServiceImpl) Get(_ context.Context, id uuid.UUID) (models.User, *ServiceError) {
	user, ok := s.repo.Get(id)
	if !ok {
		return models.User{}, &ServiceError{StatusCode: 404, Message: "User not found"}
	}
	return user, nil
}

// Create stores a new user after checking email uniqueness.
func (s *userServiceImpl) Create(_ context.Context, req *models.CreateUserRequest) (models.User, *ServiceError) {
	if _, exists := s.repo.FindByEmail(req.Email); exists {
		return models.User{}, &ServiceError{StatusCode: 409, Message: "User with this email already exists"}
	}

	user := s.repo.Create(models.User{
		Name:  req.Name,
		Email: req.Email,
		Age:   req.Age,
	})

	s.logger.Info("User created", zap.String("id", user.ID.String()))
	return user, nil
}

// Replace overwrites every field of an existing user. A changed email is
// re-checked for uniqueness against all other users.
func (s *userServiceImpl) Replace(_ context.Context, id uuid.UUID, req *models.ReplaceUserRequest) (models.User, *ServiceError) {
	existing, ok := s.repo.Get(id)
	if !ok {
		return models.User{}, &ServiceError{StatusCode: 404, Message: "User not found"}
	}

	if req.Email != existing.Email {
		if clash, exists := s.repo.FindByEmail(req.Email); exists && clash.ID != id {
			return models.User{}, &ServiceError{StatusCode: 409, Message: "User with this email already exists"}
		}
	}

	user, _ := s.repo.Update(id, func(u *models.User) {
		u.Name = req.Name
		u.Email = req.Email
		u.Age = req.Age
	})
	return user, nil
}

// Patch applies only the fields present in the request, with the same
// email-uniqueness check as Replace.
func (s *userServiceImpl) Patch(_ context.Context, id uuid.UUID, req *models.PatchUserRequest) (models.User, *ServiceError) {
	existing, ok := s.repo.Get(id)
	if !ok {
		return models.User{}, &ServiceError{StatusCode: 404, Message: "User not found"}
	}

	if req.Email != nil && *req.Email != existing.Email {
		if clash, exists := s.repo.FindByEmail(*req.Email); exists && clash.ID != id {
			return models.User{}, &ServiceError{StatusCode: 409, Message: "User with this email already exists"}
		}
	}

	user, _ := s.repo.Update(id, func(u *models.User) {
		if req.Name != nil {
			u.Name = *req.Name
		}
		if req.Email != nil {
			u.Email = *req.Email
		}
		if req.Age != nil {
			u.Age = *req.Age
		}
	})
	return user, nil
}

// Delete removes a user. Orders referencing the user keep their snapshots.
func (s *userServiceImpl) Delete(_ context.Context, id uuid.UUID) *ServiceError {
	if !s.repo.Delete(id) {
		return &ServiceError{StatusCode: 404, Message: "User not found"}
	}
	s.logger.Info("User deleted", zap.String("id", id.String()))
	return nil
}
