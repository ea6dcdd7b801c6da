package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"store-api/models"
	"store-api/repository"
	"store-api/services"
)

type orderFixture struct {
	svc      services.OrderService
	users    repository.UserRepository
	products repository.ProductRepository
	orders   repository.OrderRepository
}

func newOrderFixture() *orderFixture {
	users := repository.NewMemoryUserRepository()
	products := repository.NewMemoryProductRepository()
	orders := repository.NewMemoryOrderRepository()
	logger, _ := zap.NewDevelopment()
	return &orderFixture{
		svc:      services.NewOrderService(orders, users, products, logger),
		users:    users,
		products: products,
		orders:   orders,
	}
}

func (f *orderFixture) user() models.User {
	return f.users.Create(models.User{Name: "John Doe", Email: uuid.NewString() + "@x.com", Age: 30})
}

func (f *orderFixture) product(name string, price float64, inStock bool) models.Product {
	return f.products.Create(models.Product{
		Name: name, Price: price, Category: models.CategoryElectronics, InStock: inStock,
	})
}

func TestOrderService_CreateComputesTotalAndSnapshotsPrices(t *testing.T) {
	f := newOrderFixture()
	user := f.user()
	p1 := f.product("First", 10, true)
	p2 := f.product("Second", 5, true)

	order, svcErr := f.svc.Create(context.Background(), &models.CreateOrderRequest{
		UserID: user.ID,
		Products: []models.CreateOrderItem{
			{ProductID: p1.ID, Quantity: 2},
			{ProductID: p2.ID, Quantity: 3},
		},
	})
	assert.Nil(t, svcErr)
	assert.Equal(t, 35.0, order.TotalAmount)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, 10.0, order.Products[0].Price)
	assert.Equal(t, 5.0, order.Products[1].Price)

	// the line price is a snapshot: changing the product later must not
	// affect the stored order
	_, _ = f.products.Update(p1.ID, func(p *models.Product) { p.Price = 99 })
	stored, _ := f.svc.Get(context.Background(), order.ID)
	assert.Equal(t, 10.0, stored.Products[0].Price)
	assert.Equal(t, 35.0, stored.TotalAmount)
}

func TestOrderService_CreateUnknownUserIsAtomic(t *testing.T) {
	f := newOrderFixture()
	p := f.product("Widget", 10, true)

	before := f.orders.Len()
	_, svcErr := f.svc.Create(context.Background(), &models.CreateOrderRequest{
		UserID:   uuid.New(),
		Products: []models.CreateOrderItem{{ProductID: p.ID, Quantity: 1}},
	})
	assert.NotNil(t, svcErr)
	assert.Equal(t, 404, svcErr.StatusCode)
	assert.Equal(t, "User not found", svcErr.Message)
	assert.Equal(t, before, f.orders.Len())
}

func TestOrderService_CreateUnknownProductNamesTheID(t *testing.T) {
	f := newOrderFixture()
	user := f.user()
	known := f.product("Known", 10, true)
	unknown := uuid.New()

	before := f.orders.Len()
	_, svcErr := f.svc.Create(context.Background(), &models.CreateOrderRequest{
		UserID: user.ID,
		Products: []models.CreateOrderItem{
			{ProductID: known.ID, Quantity: 1},
			{ProductID: unknown, Quantity: 1},
		},
	})
	assert.NotNil(t, svcErr)
	assert.Equal(t, 404, svcErr.StatusCode)
	assert.Contains(t, svcErr.Message, unknown.String())
	assert.Equal(t, before, f.orders.Len())
}

func TestOrderService_CreateOutOfStock(t *testing.T) {
	f := newOrderFixture()
	user := f.user()
	gone := f.product("Sold Out", 10, false)

	before := f.orders.Len()
	_, svcErr := f.svc.Create(context.Background(), &models.CreateOrderRequest{
		UserID:   user.ID,
		Products: []models.CreateOrderItem{{ProductID: gone.ID, Quantity: 1}},
	})
	assert.NotNil(t, svcErr)
	assert.Equal(t, 400, svcErr.StatusCode)
	assert.Contains(t, svcErr.Message, "out of stock")
	assert.Equal(t, before, f.orders.Len())
}

func TestOrderService_ReplaceRevalidatesReferencesButNotStock(t *testing.T) {
	f := newOrderFixture()
	user := f.user()
	p := f.product("Widget", 10, true)

	order, _ := f.svc.Create(context.Background(), &models.CreateOrderRequest{
		UserID:   user.ID,
		Products: []models.CreateOrderItem{{ProductID: p.ID, Quantity: 1}},
	})

	// unknown product id on PUT fails
	_, svcErr := f.svc.Replace(context.Background(), order.ID, &models.ReplaceOrderRequest{
		UserID:      user.ID,
		Products:    []models.ReplaceOrderItem{{ProductID: uuid.New(), Quantity: 1, Price: 10}},
		TotalAmount: floatPtr(10),
		Status:      models.OrderStatusPending,
	})
	assert.NotNil(t, svcErr)
	assert.Equal(t, 404, svcErr.StatusCode)

	// product now out of stock: PUT still succeeds, and caller-supplied
	// price and total are taken as-is
	_, _ = f.products.Update(p.ID, func(pr *models.Product) { pr.InStock = false })

	updated, svcErr := f.svc.Replace(context.Background(), order.ID, &models.ReplaceOrderRequest{
		UserID:      user.ID,
		Products:    []models.ReplaceOrderItem{{ProductID: p.ID, Quantity: 2, Price: 7}},
		TotalAmount: floatPtr(999),
		Status:      models.OrderStatusProcessing,
	})
	assert.Nil(t, svcErr)
	assert.Equal(t, 999.0, updated.TotalAmount)
	assert.Equal(t, 7.0, updated.Products[0].Price)
	assert.Equal(t, models.OrderStatusProcessing, updated.Status)
}

func TestOrderService_ReplaceUnknownOrder(t *testing.T) {
	f := newOrderFixture()
	user := f.user()

	_, svcErr := f.svc.Replace(context.Background(), uuid.New(), &models.ReplaceOrderRequest{
		UserID:      user.ID,
		Products:    []models.ReplaceOrderItem{{ProductID: uuid.New(), Quantity: 1, Price: 1}},
		TotalAmount: floatPtr(1),
		Status:      models.OrderStatusPending,
	})
	assert.NotNil(t, svcErr)
	assert.Equal(t, 404, svcErr.StatusCode)
	assert.Equal(t, "Order not found", svcErr.Message)
}

func TestOrderService_PatchStatusAnyTransition(t *testing.T) {
	f := newOrderFixture()
	user := f.user()
	p := f.product("Widget", 10, true)

	order, _ := f.svc.Create(context.Background(), &models.CreateOrderRequest{
		UserID:   user.ID,
		Products: []models.CreateOrderItem{{ProductID: p.ID, Quantity: 1}},
	})

	delivered := models.OrderStatusDelivered
	updated, svcErr := f.svc.Patch(context.Background(), order.ID, &models.PatchOrderRequest{Status: &delivered})
	assert.Nil(t, svcErr)
	assert.Equal(t, models.OrderStatusDelivered, updated.Status)

	// transitions are unconstrained: delivered back to pending is allowed
	pending := models.OrderStatusPending
	updated, svcErr = f.svc.Patch(context.Background(), order.ID, &models.PatchOrderRequest{Status: &pending})
	assert.Nil(t, svcErr)
	assert.Equal(t, models.OrderStatusPending, updated.Status)

	// total is untouched by patch
	assert.Equal(t, order.TotalAmount, updated.TotalAmount)
}

func TestOrderService_ListFilters(t *testing.T) {
	f := newOrderFixture()
	alice := f.user()
	bob := f.user()
	p := f.product("Widget", 10, true)

	first, _ := f.svc.Create(context.Background(), &models.CreateOrderRequest{
		UserID: alice.ID, Products: []models.CreateOrderItem{{ProductID: p.ID, Quantity: 1}},
	})
	_, _ = f.svc.Create(context.Background(), &models.CreateOrderRequest{
		UserID: bob.ID, Products: []models.CreateOrderItem{{ProductID: p.ID, Quantity: 5}},
	})

	shipped := models.OrderStatusShipped
	_, _ = f.svc.Patch(context.Background(), first.ID, &models.PatchOrderRequest{Status: &shipped})

	orders, meta, svcErr := f.svc.List(context.Background(), models.OrderFilters{UserID: &alice.ID}, 1, 10)
	assert.Nil(t, svcErr)
	assert.Len(t, orders, 1)
	assert.Equal(t, 1, meta.Total)

	orders, _, _ = f.svc.List(context.Background(), models.OrderFilters{Status: "shipped"}, 1, 10)
	assert.Len(t, orders, 1)
	assert.Equal(t, first.ID, orders[0].ID)

	// amount bounds are inclusive on totalAmount
	orders, _, _ = f.svc.List(context.Background(), models.OrderFilters{MinAmount: floatPtr(50), MaxAmount: floatPtr(50)}, 1, 10)
	assert.Len(t, orders, 1)
	assert.Equal(t, 50.0, orders[0].TotalAmount)
}

func TestOrderService_Delete(t *testing.T) {
	f := newOrderFixture()
	user := f.user()
	p := f.product("Widget", 10, true)

	order, _ := f.svc.Create(context.Background(), &models.CreateOrderRequest{
		UserID:   user.ID,
		Products: []models.CreateOrderItem{{ProductID: p.ID, Quantity: 1}},
	})

	assert.Nil(t, f.svc.Delete(context.Background(), order.ID))

	svcErr := f.svc.Delete(context.Background(), order.ID)
	assert.NotNil(t, svcErr)
	assert.Equal(t, 404, svcErr.StatusCode)
}
