package controllers

import (
	"github.com/gin-gonic/gin"

	"store-api/httputil"
	"store-api/models"
	"store-api/services"
)

// ProductController handles HTTP requests for product operations.
type ProductController struct {
	products services.ProductService
}

// NewProductController creates a new ProductController.
func NewProductController(products services.ProductService) *ProductController {
	return &ProductController{products: products}
}

// List handles GET /products.
func (pc *ProductController) List(c *gin.Context) {
	page, limit, fieldErrs := parsePagination(c)

	filters := models.ProductFilters{
		Name:     c.Query("name"),
		Category: c.Query("category"),
		MinPrice: parseFloatQuery(c, "minPrice", &fieldErrs),
		MaxPrice: parseFloatQuery(c, "maxPrice", &fieldErrs),
		InStock:  parseBoolQuery(c, "inStock", &fieldErrs),
	}
	if len(fieldErrs) > 0 {
		httputil.Error(c, 400, "Validation failed", fieldErrs)
		return
	}

	products, meta, svcErr := pc.products.List(c.Request.Context(), filters, page, limit)
	if svcErr != nil {
		httputil.Error(c, svcErr.StatusCode, svcErr.Message, nil)
		return
	}

	if products == nil {
		products = []models.Product{}
	}
	httputil.OKPaginated(c, products, meta)
}

// Get handles GET /products/:id.
func (pc *ProductController) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	product, svcErr := pc.products.Get(c.Request.Context(), id)
	if svcErr != nil {
		httputil.Error(c, svcErr.StatusCode, svcErr.Message, nil)
		return
	}
	httputil.OK(c, product)
}

// Create handles POST /products.
func (pc *ProductController) Create(c *gin.Context) {
	var req models.CreateProductRequest
	if !bindJSON(c, &req) {
		return
	}

	product, svcErr := pc.products.Create(c.Request.Context(), &req)
	if svcErr != nil {
		httputil.Error(c, svcErr.StatusCode, svcErr.Message, nil)
		return
	}
	httputil.Created(c, product)
}

// Replace handles PUT /products/:id.
func (pc *ProductController) Replace(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req models.ReplaceProductRequest
	if !bindJSON(c, &req) {
		return
	}

	product, svcErr := pc.products.Replace(c.Request.Context(), id, &req)
	if svcErr != nil {
		httputil.Error(c, svcErr.StatusCode, svcErr.Message, nil)
		return
	}
	httputil.OK(c, product)
}

// Patch handles PATCH /products/:id.
func (pc *ProductController) Patch(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req models.PatchProductRequest
	if !bindJSON(c, &req) {
		return
	}

	product, svcErr := pc.products.Patch(c.Request.Context(), id, &req)
	if svcErr != nil {
		httputil.Error(c, svcErr.StatusCode, svcErr.Message, nil)
		return
	}
	httputil.OK(c, product)
}

// Delete handles DELETE /products/:id.
func (pc *ProductController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if svcErr := pc.products.Delete(c.Request.Context(), id); svcErr != nil {
		httputil.Error(c, svcErr.StatusCode, svcErr.Message, nil)
		return
	}
	httputil.Message(c, "Product deleted successfully")
}
