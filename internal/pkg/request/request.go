// Package request holds the binding helpers shared by the HTTP handlers.
package request

import (
	"net/http"
	"strconv"

	"github.com/caffeine-junky/jobconnect/internal/pkg/response"
	"github.com/caffeine-junky/jobconnect/internal/pkg/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

// BindJSON decodes and validates the body into dst. On failure the 400
// response is already written.
func BindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", err.Error())
		return false
	}
	if errs := validator.Validate(dst); errs != nil {
		response.ValidationFailed(c, errs)
		return false
	}
	return true
}

// UUIDParam parses a path parameter as a UUID.
func UUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// UUIDQuery returns nil when the query parameter is absent.
func UUIDQuery(c *gin.Context, name string) (*uuid.UUID, bool) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid "+name)
		return nil, false
	}
	return &id, true
}

func BoolQuery(c *gin.Context, name string) (*bool, bool) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid "+name)
		return nil, false
	}
	return &v, true
}

func IntQuery(c *gin.Context, name string) (*int, bool) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid "+name)
		return nil, false
	}
	return &v, true
}

func FloatQuery(c *gin.Context, name string) (*float64, bool) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid "+name)
		return nil, false
	}
	return &v, true
}

// Page reads skip and limit, defaulting to 0 and 100.
func Page(c *gin.Context) (skip, limit int, ok bool) {
	skip, limit = 0, DefaultLimit
	if v, ok := IntQuery(c, "skip"); !ok {
		return 0, 0, false
	} else if v != nil {
		skip = *v
	}
	if v, ok := IntQuery(c, "limit"); !ok {
		return 0, 0, false
	} else if v != nil {
		limit = *v
	}
	if skip < 0 || limit < 1 || limit > MaxLimit {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "skip must be >= 0 and limit between 1 and 1000")
		return 0, 0, false
	}
	return skip, limit, true
}
