package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"store-api/models"
	"store-api/repository"
)

// OrderService defines the business logic for orders, including the
// cross-entity checks run on creation.
type OrderService interface {
	List(ctx context.Context, filters models.OrderFilters, page, limit int) ([]models.Order, Pagination, *ServiceError)
	Get(ctx context.Context, id uuid.UUID) (models.Order, *ServiceError)
	Create(ctx context.Context, req *models.CreateOrderRequest) (models.Order, *ServiceError)
	Replace(ctx context.Context, id uuid.UUID, req *models.ReplaceOrderRequest) (models.Order, *ServiceError)
	Patch(ctx context.Context, id uuid.UUID, req *models.PatchOrderRequest) (models.Order, *ServiceError)
	Delete(ctx context.Context, id uuid.UUID) *ServiceError
}

type orderServiceImpl struct {
	orders   repository.OrderRepository
	users    repository.UserRepository
	products repository.ProductRepository
	logger   *zap.Logger
}

// NewOrderService creates a new OrderService.
func NewOrderService(
	orders repository.OrderRepository,
	users repository.UserRepository,
	products repository.ProductRepository,
	logger *zap.Logger,
) OrderService {
	return &orderServiceImpl{
		orders:   orders,
		users:    users,
		products: products,
		logger:   logger,
	}
}

// List returns the filtered then paginated orders.
func (s *orderServiceImpl) List(_ context.Context, filters models.OrderFilters, page, limit int) ([]models.Order, Pagination, *ServiceError) {
	var filtered []models.Order
	for _, o := range s.orders.All() {
		if filters.UserID != nil && o.UserID != *filters.UserID {
			continue
		}
		if filters.Status != "" && string(o.Status) != filters.Status {
			continue
		}
		if filters.MinAmount != nil && o.TotalAmount < *filters.MinAmount {
			continue
		}
		if filters.MaxAmount != nil && o.TotalAmount > *filters.MaxAmount {
			continue
		}
		filtered = append(filtered, o)
	}

	orders, meta := paginate(filtered, page, limit)
	return orders, meta, nil
}

// Get returns the order with the given id.
func (s *orderServiceImpl) Get(_ context.Context, id uuid.UUID) (models.Order, *ServiceError) {
	order, ok := s.orders.Get(id)
	if !ok {
		return models.Order{}, &ServiceError{StatusCode: 404, Message: "Order not found"}
	}
	return order, nil
}

// Create runs the order composition rule: the user must exist, every
// referenced product must exist and be in stock, line prices are
// snapshotted from the products and the total is the sum of price times
// quantity. Every check runs before the single store write, so a failed
// create never leaves a partial order behind.
func (s *orderServiceImpl) Create(_ context.Context, req *models.CreateOrderRequest) (models.Order, *ServiceError) {
	if _, ok := s.users.Get(req.UserID); !ok {
		return models.Order{}, &ServiceError{StatusCode: 404, Message: "User not found"}
	}

	lines := make([]models.OrderItem, 0, len(req.Products))
	var total float64
	for _, item := range req.Products {
		product, ok := s.products.Get(item.ProductID)
		if !ok {
			return models.Order{}, &ServiceError{
				StatusCode: 404,
				Message:    fmt.Sprintf("Product with id %s not found", item.ProductID),
			}
		}
		if !product.InStock {
			return models.Order{}, &ServiceError{
				StatusCode: 400,
				Message:    fmt.Sprintf("Product %s is out of stock", product.Name),
			}
		}
		lines = append(lines, models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     product.Price,
		})
		total += product.Price * float64(item.Quantity)
	}

	order := s.orders.Create(models.Order{
		UserID:      req.UserID,
		Products:    lines,
		TotalAmount: total,
		Status:      models.OrderStatusPending,
	})

	s.logger.Info("Order created",
		zap.String("id", order.ID.String()),
		zap.String("userId", order.UserID.String()),
		zap.Float64("totalAmount", order.TotalAmount),
	)
	return order, nil
}

// Replace overwrites an existing order. The user and every product id are
// revalidated, but stock is not re-checked and line prices and TotalAmount
// are taken from the caller, not recomputed.
func (s *orderServiceImpl) Replace(_ context.Context, id uuid.UUID, req *models.ReplaceOrderRequest) (models.Order, *ServiceError) {
	if _, ok := s.orders.Get(id); !ok {
		return models.Order{}, &ServiceError{StatusCode: 404, Message: "Order not found"}
	}
	if _, ok := s.users.Get(req.UserID); !ok {
		return models.Order{}, &ServiceError{StatusCode: 404, Message: "User not found"}
	}
	for _, item := range req.Products {
		if _, ok := s.products.Get(item.ProductID); !ok {
			return models.Order{}, &ServiceError{
				StatusCode: 404,
				Message:    fmt.Sprintf("Product with id %s not found", item.ProductID),
			}
		}
	}

	lines := make([]models.OrderItem, 0, len(req.Products))
	for _, item := range req.Products {
		lines = append(lines, models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	order, _ := s.orders.Update(id, func(o *models.Order) {
		o.UserID = req.UserID
		o.Products = lines
		o.TotalAmount = *req.TotalAmount
		o.Status = req.Status
	})
	return order, nil
}

// Patch applies only the fields present in the request. TotalAmount is
// never re-derived, even when the product lines are replaced.
func (s *orderServiceImpl) Patch(_ context.Context, id uuid.UUID, req *models.PatchOrderRequest) (models.Order, *ServiceError) {
	order, ok := s.orders.Update(id, func(o *models.Order) {
		if req.UserID != nil {
			o.UserID = *req.UserID
		}
		if req.Products != nil {
			o.Products = *req.Products
		}
		if req.TotalAmount != nil {
			o.TotalAmount = *req.TotalAmount
		}
		if req.Status != nil {
			o.Status = *req.Status
		}
	})
	if !ok {
		return models.Order{}, &ServiceError{StatusCode: 404, Message: "Order not found"}
	}
	return order, nil
}

// Delete removes an order.
func (s *orderServiceImpl) Delete(_ context.Context, id uuid.UUID) *ServiceError {
	if !s.orders.Delete(id) {
		return &ServiceError{StatusCode: 404, Message: "Order not found"}
	}
	s.logger.Info("Order deleted", zap.String("id", id.String()))
	return nil
}
