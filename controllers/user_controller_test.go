package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"store-api/controllers"
	"store-api/models"
	"store-api/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// --- Mock UserService ---

type mockUserService struct {
	listFn    func(ctx context.Context, filters models.UserFilters, page, limit int) ([]models.User, services.Pagination, *services.ServiceError)
	getFn     func(ctx context.Context, id uuid.UUID) (models.User, *services.ServiceError)
	createFn  func(ctx context.Context, req *models.CreateUserRequest) (models.User, *services.ServiceError)
	replaceFn func(ctx context.Context, id uuid.UUID, req *models.ReplaceUserRequest) (models.User, *services.ServiceError)
	patchFn   func(ctx context.Context, id uuid.UUID, req *models.PatchUserRequest) (models.User, *services.ServiceError)
	deleteFn  func(ctx context.Context, id uuid.UUID) *services.ServiceError
}

func (m *mockUserService) List(ctx context.Context, filters models.UserFilters, page, limit int) ([]models.User, services.Pagination, *services.ServiceError) {
	return m.listFn(ctx, filters, page, limit)
}
func (m *mockUserService) Get(ctx context.Context, id uuid.UUID) (models.User, *services.ServiceError) {
	return m.getFn(ctx, id)
}
func (m *mockUserService) Create(ctx context.Context, req *models.CreateUserRequest) (models.User, *services.ServiceError) {
	return m.createFn(ctx, req)
}
func (m *mockUserService) Replace(ctx context.Context, id uuid.UUID, req *models.ReplaceUserRequest) (models.User, *services.ServiceError) {
	return m.replaceFn(ctx, id, req)
}
func (m *mockUserService) Patch(ctx context.Context, id uuid.UUID, req *models.PatchUserRequest) (models.User, *services.ServiceError) {
	return m.patchFn(ctx, id, req)
}
func (m *mockUserService) Delete(ctx context.Context, id uuid.UUID) *services.ServiceError {
	return m.deleteFn(ctx, id)
}

// --- Helpers ---

func setupUserRouter(svc services.UserService) *gin.Engine {
	r := gin.New()
	uc := controllers.NewUserController(svc)
	r.GET("/users", uc.List)
	r.GET("/users/:id", uc.Get)
	r.POST("/users", uc.Create)
	r.PUT("/users/:id", uc.Replace)
	r.PATCH("/users/:id", uc.Patch)
	r.DELETE("/users/:id", uc.Delete)
	return r
}

func doJSON(r *gin.Engine, method, path string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		b, _ := json.Marshal(payload)
		body = bytes.NewBuffer(b)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req, _ := http.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// --- Tests ---

func TestUserController_Create_Success(t *testing.T) {
	svc := &mockUserService{
		createFn: func(_ context.Context, req *models.CreateUserRequest) (models.User, *services.ServiceError) {
			u := models.User{Name: req.Name, Email: req.Email, Age: req.Age}
			u.ID = uuid.New()
			return u, nil
		},
	}
	r := setupUserRouter(svc)

	w := doJSON(r, http.MethodPost, "/users", models.CreateUserRequest{
		Name: "John Doe", Email: "j@x.com", Age: 30,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, true, resp["success"])
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "John Doe", data["name"])
	assert.NotEmpty(t, data["id"])
}

func TestUserController_Create_ValidationFieldErrors(t *testing.T) {
	svc := &mockUserService{}
	r := setupUserRouter(svc)

	// name too short, email invalid, age below 18
	w := doJSON(r, http.MethodPost, "/users", map[string]interface{}{
		"name": "J", "email": "not-an-email", "age": 10,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, true, resp["error"])
	assert.Equal(t, "Validation failed", resp["message"])
	assert.Equal(t, float64(400), resp["statusCode"])
	assert.Equal(t, "/users", resp["path"])
	assert.Equal(t, "POST", resp["method"])

	fields := resp["errors"].([]interface{})
	assert.Len(t, fields, 3)
	first := fields[0].(map[string]interface{})
	assert.Equal(t, "name", first["field"])
	assert.Equal(t, "J", first["value"])
}

func TestUserController_Create_MalformedBody(t *testing.T) {
	svc := &mockUserService{}
	r := setupUserRouter(svc)

	req, _ := http.NewRequest(http.MethodPost, "/users", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "Invalid request body", resp["message"])
}

func TestUserController_Create_Conflict(t *testing.T) {
	svc := &mockUserService{
		createFn: func(_ context.Context, _ *models.CreateUserRequest) (models.User, *services.ServiceError) {
			return models.User{}, &services.ServiceError{StatusCode: 409, Message: "User with this email already exists"}
		},
	}
	r := setupUserRouter(svc)

	w := doJSON(r, http.MethodPost, "/users", models.CreateUserRequest{
		Name: "John Doe", Email: "a@x.com", Age: 30,
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "User with this email already exists", resp["message"])
}

func TestUserController_Get_InvalidUUIDBeforeLookup(t *testing.T) {
	called := false
	svc := &mockUserService{
		getFn: func(_ context.Context, _ uuid.UUID) (models.User, *services.ServiceError) {
			called = true
			return models.User{}, nil
		},
	}
	r := setupUserRouter(svc)

	w := doJSON(r, http.MethodGet, "/users/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, called)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	fields := resp["errors"].([]interface{})
	first := fields[0].(map[string]interface{})
	assert.Equal(t, "id", first["field"])
	assert.Equal(t, "not-a-uuid", first["value"])
}

func TestUserController_Get_NotFound(t *testing.T) {
	svc := &mockUserService{
		getFn: func(_ context.Context, _ uuid.UUID) (models.User, *services.ServiceError) {
			return models.User{}, &services.ServiceError{StatusCode: 404, Message: "User not found"}
		},
	}
	r := setupUserRouter(svc)

	w := doJSON(r, http.MethodGet, "/users/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserController_List_PaginationMeta(t *testing.T) {
	svc := &mockUserService{
		listFn: func(_ context.Context, _ models.UserFilters, page, limit int) ([]models.User, services.Pagination, *services.ServiceError) {
			return []models.User{}, services.Pagination{Page: page, Limit: limit, Total: 0, TotalPages: 0}, nil
		},
	}
	r := setupUserRouter(svc)

	w := doJSON(r, http.MethodGet, "/users?page=2&limit=5", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	meta := resp["pagination"].(map[string]interface{})
	assert.Equal(t, float64(2), meta["page"])
	assert.Equal(t, float64(5), meta["limit"])
}

func TestUserController_List_InvalidPagination(t *testing.T) {
	svc := &mockUserService{}
	r := setupUserRouter(svc)

	w := doJSON(r, http.MethodGet, "/users?page=0&limit=500", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	fields := resp["errors"].([]interface{})
	assert.Len(t, fields, 2)
}

func TestUserController_Delete_Success(t *testing.T) {
	svc := &mockUserService{
		deleteFn: func(_ context.Context, _ uuid.UUID) *services.ServiceError { return nil },
	}
	r := setupUserRouter(svc)

	w := doJSON(r, http.MethodDelete, "/users/"+uuid.NewString(), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "User deleted successfully", resp["message"])
}
