package routes

import (
	"github.com/gin-gonic/gin"

	"store-api/controllers"
)

// Register sets up all routes on the router. Resources live under /api/v1;
// the health probe and the service descriptor sit at the root.
func Register(
	r *gin.Engine,
	hc *controllers.HealthController,
	uc *controllers.UserController,
	pc *controllers.ProductController,
	oc *controllers.OrderController,
) {
	r.GET("/health", hc.Health)
	r.GET("/", hc.Root)

	v1 := r.Group("/api/v1")

	users := v1.Group("/users")
	users.GET("", uc.List)
	users.GET("/:id", uc.Get)
	users.POST("", uc.Create)
	users.PUT("/:id", uc.Replace)
	users.PATCH("/:id", uc.Patch)
	users.DELETE("/:id", uc.Delete)

	products := v1.Group("/products")
	products.GET("", pc.List)
	products.GET("/:id", pc.Get)
	products.POST("", pc.Create)
	products.PUT("/:id", pc.Replace)
	products.PATCH("/:id", pc.Patch)
	products.DELETE("/:id", pc.Delete)

	orders := v1.Group("/orders")
	orders.GET("", oc.List)
	orders.GET("/:id", oc.Get)
	orders.POST("", oc.Create)
	orders.PUT("/:id", oc.Replace)
	orders.PATCH("/:id", oc.Patch)
	orders.DELETE("/:id", oc.Delete)
}
