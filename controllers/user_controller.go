package controllers

import (
	"github.com/gin-gonic/gin"

	"store-api/httputil"
	"store-api/models"
	"store-api/services"
)

// UserController handles HTTP requests for user operations.
type UserController struct {
	users services.UserService
}

// NewUserController creates a new UserController.
func NewUserController(users services.UserService) *UserController {
	return &UserController{users: users}
}

// List handles GET /users.
func (uc *UserController) List(c *gin.Context) {
	page, limit, fieldErrs := parsePagination(c)
	if len(fieldErrs) > 0 {
		httputil.Error(c, 400, "Validation failed", fieldErrs)
		return
	}

	filters := models.UserFilters{
		Name:  c.Query("name"),
		Email: c.Query("email"),
	}

	users, meta, svcErr := uc.users.List(c.Request.Context(), filters, page, limit)
	if svcErr != nil {
		httputil.Error(c, svcErr.StatusCode, svcErr.Message, nil)
		return
	}

	if users == nil {
		users = []models.User{}
	}
	httputil.OKPaginated(c, users, meta)
}

// Get handles GET /users/:id.
func (uc *UserController) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	user, svcErr := uc.users.Get(c.Request.Context(), id)
	if svcErr != nil {
		httputil.Error(c, svcErr.StatusCode, svcErr.Message, nil)
		return
	}
	httputil.OK(c, user)
}

// Create handles POST /users.
func (uc *UserController) Create(c *gin.Context) {
	var req models.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, svcErr := uc.users.Create(c.Request.Context(), &req)
	if svcErr != nil {
		httputil.Error(c, svcErr.StatusCode, svcErr.Message, nil)
		return
	}
	httputil.Created(c, user)
}

// Replace handles PUT /users/:id.
func (uc *UserController) Replace(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req models.ReplaceUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, svcErr := uc.users.Replace(c.Request.Context(), id, &req)
	if svcErr != nil {
		httputil.Error(c, svcErr.StatusCode, svcErr.Message, nil)
		return
	}
	httputil.OK(c, user)
}

// Patch handles PATCH /users/:id.
func (uc *UserController) Patch(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req models.PatchUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, svcErr := uc.users.Patch(c.Request.Context(), id, &req)
	if svcErr != nil {
		httputil.Error(c, svcErr.StatusCode, svcErr.Message, nil)
		return
	}
	httputil.OK(c, user)
}

// Delete handles DELETE /users/:id.
func (uc *UserController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if svcErr := uc.users.Delete(c.Request.Context(), id); svcErr != nil {
		httputil.Error(c, svcErr.StatusCode, svcErr.Message, nil)
		return
	}
	httputil.Message(c, "User deleted successfully")
}
