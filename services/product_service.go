package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"store-api/models"
	"store-api/repository"
)

// ProductService defines the business logic for products.
type ProductService interface {
	List(ctx context.Context, filters models.ProductFilters, page, limit int) ([]models.Product, Pagination, *ServiceError)
	Get(ctx context.Context, id uuid.UUID) (models.Product, *ServiceError)
	Create(ctx context.Context, req *models.CreateProductRequest) (models.Product, *ServiceError)
	Replace(ctx context.Context, id uuid.UUID, req *models.ReplaceProductRequest) (models.Product, *ServiceError)
	Patch(ctx context.Context, id uuid.UUID, req *models.PatchProductRequest) (models.Product, *ServiceError)
	Delete(ctx context.Context, id uuid.UUID) *ServiceError
}

type productServiceImpl struct {
	repo   repository.ProductRepository
	logger *zap.Logger
}

// NewProductService creates a new ProductService.
func NewProductService(repo repository.ProductRepository, logger *zap.Logger) ProductService {
	return &productServiceImpl{repo: repo, logger: logger}
}

// List returns the filtered then paginated products.
func (s *productServiceImpl) List(_ context.Context, filters models.ProductFilters, page, limit int) ([]models.Product, Pagination, *ServiceError) {
	var filtered []models.Product
	nameFilter := strings.ToLower(filters.Name)
	for _, p := range s.repo.All() {
		if nameFilter != "" && !strings.Contains(strings.ToLower(p.Name), nameFilter) {
			continue
		}
		if filters.Category != "" && string(p.Category) != filters.Category {
			continue
		}
		if filters.MinPrice != nil && p.Price < *filters.MinPrice {
			continue
		}
		if filters.MaxPrice != nil && p.Price > *filters.MaxPrice {
			continue
		}
		if filters.InStock != nil && p.InStock != *filters.InStock {
			continue
		}
		filtered = append(filtered, p)
	}

	products, meta := paginate(filtered, page, limit)
	return products, meta, nil
}

// Get returns the product with the given id.
func (s *productServiceImpl) Get(_ context.Context, id uuid.UUID) (models.Product, *ServiceError) {
	product, ok := s.repo.Get(id)
	if !ok {
		return models.Product{}, &ServiceError{StatusCode: 404, Message: "Product not found"}
	}
	return product, nil
}

// Create stores a new product. There is no uniqueness constraint. InStock
// defaults to true when omitted.
func (s *productServiceImpl) Create(_ context.Context, req *models.CreateProductRequest) (models.Product, *ServiceError) {
	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}

	product := s.repo.Create(models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Category:    req.Category,
		InStock:     inStock,
	})

	s.logger.Info("Product created", zap.String("id", product.ID.String()))
	return product, nil
}

// Replace overwrites every field of an existing product.
func (s *productServiceImpl) Replace(_ context.Context, id uuid.UUID, req *models.ReplaceProductRequest) (models.Product, *ServiceError) {
	product, ok := s.repo.Update(id, func(p *models.Product) {
		p.Name = req.Name
		p.Description = req.Description
		p.Price = *req.Price
		p.Category = req.Category
		p.InStock = *req.InStock
	})
	if !ok {
		return models.Product{}, &ServiceError{StatusCode: 404, Message: "Product not found"}
	}
	return product, nil
}

// Patch applies only the fields present in the request.
func (s *productServiceImpl) Patch(_ context.Context, id uuid.UUID, req *models.PatchProductRequest) (models.Product, *ServiceError) {
	product, ok := s.repo.Update(id, func(p *models.Product) {
		if req.Name != nil {
			p.Name = *req.Name
		}
		if req.Description != nil {
			p.Description = *req.Description
		}
		if req.Price != nil {
			p.Price = *req.Price
		}
		if req.Category != nil {
			p.Category = *req.Category
		}
		if req.InStock != nil {
			p.InStock = *req.InStock
		}
	})
	if !ok {
		return models.Product{}, &ServiceError{StatusCode: 404, Message: "Product not found"}
	}
	return product, nil
}

// Delete removes a product. Orders referencing it keep their line
// snapshots.
func (s *productServiceImpl) Delete(_ context.Context, id uuid.UUID) *ServiceError {
	if !s.repo.Delete(id) {
		return &ServiceError{StatusCode: 404, Message: "Product not found"}
	}
	s.logger.Info("Product deleted", zap.String("id", id.String()))
	return nil
}
