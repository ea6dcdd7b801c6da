package controllers

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"store-api/httputil"
)

// Pagination constants
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

func init() {
	// Report validation failures under json field names, not Go ones.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// parsePagination reads page/limit query params. Absent params fall back
// to the defaults; present but invalid params are a validation failure.
func parsePagination(c *gin.Context) (int, int, []httputil.FieldError) {
	var fieldErrs []httputil.FieldError

	page := DefaultPage
	if raw := c.Query("page"); raw != "" {
		p, err := strconv.Atoi(raw)
		if err != nil || p < 1 {
			fieldErrs = append(fieldErrs, httputil.FieldError{
				Field: "page", Message: "must be a positive integer", Value: raw,
			})
		} else {
			page = p
		}
	}

	limit := DefaultLimit
	if raw := c.Query("limit"); raw != "" {
		l, err := strconv.Atoi(raw)
		if err != nil || l < 1 || l > MaxLimit {
			fieldErrs = append(fieldErrs, httputil.FieldError{
				Field: "limit", Message: fmt.Sprintf("must be an integer between 1 and %d", MaxLimit), Value: raw,
			})
		} else {
			limit = l
		}
	}

	return page, limit, fieldErrs
}

// parseIDParam parses the :id path parameter as a UUID.
func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	raw := c.Param("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		httputil.Error(c, 400, "Invalid id format", []httputil.FieldError{
			{Field: "id", Message: "must be a valid UUID", Value: raw},
		})
		return uuid.Nil, false
	}
	return id, true
}

// parseFloatQuery parses an optional float query param, recording a field
// error when it is present but unparseable.
func parseFloatQuery(c *gin.Context, name string, fieldErrs *[]httputil.FieldError) *float64 {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		*fieldErrs = append(*fieldErrs, httputil.FieldError{
			Field: name, Message: "must be a number", Value: raw,
		})
		return nil
	}
	return &v
}

// parseBoolQuery parses an optional bool query param.
func parseBoolQuery(c *gin.Context, name string, fieldErrs *[]httputil.FieldError) *bool {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		*fieldErrs = append(*fieldErrs, httputil.FieldError{
			Field: name, Message: "must be a boolean", Value: raw,
		})
		return nil
	}
	return &v
}

// bindJSON binds the request body into obj and writes the appropriate 400
// envelope when it fails: a field-level list for constraint violations, a
// generic message for an unparseable body.
func bindJSON(c *gin.Context, obj interface{}) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]httputil.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, httputil.FieldError{
				Field:   fe.Field(),
				Message: messageForTag(fe),
				Value:   fe.Value(),
			})
		}
		httputil.Error(c, 400, "Validation failed", fields)
		return false
	}

	httputil.Error(c, 400, "Invalid request body", nil)
	return false
}

// messageForTag turns a validator tag into a human-readable message.
func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must have at least %s items or characters", fe.Param())
	case "max":
		return fmt.Sprintf("must have at most %s items or characters", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed validation on %q", fe.Tag())
	}
}
