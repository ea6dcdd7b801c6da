// Package httputil provides the uniform success and error envelopes every
// handler responds with.
package httputil

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// FieldError is one field-level validation failure.
type FieldError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// SuccessBody is the envelope for all successful responses.
type SuccessBody struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Pagination interface{} `json:"pagination,omitempty"`
}

// ErrorBody is the envelope for all failure responses, regardless of kind.
type ErrorBody struct {
	Error      bool         `json:"error"`
	Message    string       `json:"message"`
	StatusCode int          `json:"statusCode"`
	Timestamp  time.Time    `json:"timestamp"`
	Path       string       `json:"path"`
	Method     string       `json:"method"`
	Errors     []FieldError `json:"errors,omitempty"`
}

// OK writes a 200 success envelope.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, SuccessBody{Success: true, Data: data})
}

// OKPaginated writes a 200 success envelope with pagination metadata.
func OKPaginated(c *gin.Context, data, pagination interface{}) {
	c.JSON(http.StatusOK, SuccessBody{Success: true, Data: data, Pagination: pagination})
}

// Created writes a 201 success envelope.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, SuccessBody{Success: true, Data: data})
}

// Message writes a 200 success envelope with a message and no data,
// used for deletes.
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, SuccessBody{Success: true, Message: message})
}

// Error writes the uniform error envelope and aborts the request.
func Error(c *gin.Context, status int, message string, fields []FieldError) {
	c.AbortWithStatusJSON(status, ErrorBody{
		Error:      true,
		Message:    message,
		StatusCode: status,
		Timestamp:  time.Now().UTC(),
		Path:       c.Request.URL.Path,
		Method:     c.Request.Method,
		Errors:     fields,
	})
}
