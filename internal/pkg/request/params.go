// Package request parses typed path and query parameters. Scalar type
// failures and missing required parameters are schema-level errors and
// map to 422; malformed range syntax is reported by the query package.
package request

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/matuteb/cancha-rental-backend/internal/pkg/apperror"
	"github.com/matuteb/cancha-rental-backend/internal/pkg/query"
)

// PathID parses an integer id path parameter.
func PathID(c *gin.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperror.Newf(http.StatusUnprocessableEntity, "the %s path parameter (%q) must be an integer", name, raw)
	}
	return id, nil
}

// RequiredString returns a required query parameter.
func RequiredString(c *gin.Context, name string) (string, error) {
	v, ok := c.GetQuery(name)
	if !ok {
		return "", apperror.Newf(http.StatusUnprocessableEntity, "the %s parameter is required", name)
	}
	return v, nil
}

// RequiredInt returns a required integer query parameter.
func RequiredInt(c *gin.Context, name string) (int, error) {
	raw, err := RequiredString(c, name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperror.Newf(http.StatusUnprocessableEntity, "the %s parameter (%q) must be an integer", name, raw)
	}
	return v, nil
}

// OptionalString returns a query parameter, nil when absent.
func OptionalString(c *gin.Context, name string) *string {
	if v, ok := c.GetQuery(name); ok {
		return &v
	}
	return nil
}

// OptionalInt returns an integer query parameter, nil when absent.
func OptionalInt(c *gin.Context, name string) (*int, error) {
	raw, ok := c.GetQuery(name)
	if !ok {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, apperror.Newf(http.StatusUnprocessableEntity, "the %s parameter (%q) must be an integer", name, raw)
	}
	return &v, nil
}

// OptionalInt64 returns an integer query parameter, nil when absent.
func OptionalInt64(c *gin.Context, name string) (*int64, error) {
	raw, ok := c.GetQuery(name)
	if !ok {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, apperror.Newf(http.StatusUnprocessableEntity, "the %s parameter (%q) must be an integer", name, raw)
	}
	return &v, nil
}

// OptionalBool returns a boolean query parameter, nil when absent.
// The value must be a genuine boolean literal, not merely truthy.
func OptionalBool(c *gin.Context, name string) (*bool, error) {
	raw, ok := c.GetQuery(name)
	if !ok {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, apperror.Newf(http.StatusUnprocessableEntity, "the %s parameter (%q) must be a boolean", name, raw)
	}
	return &v, nil
}

// BoolDefault returns a boolean query parameter with a fallback.
func BoolDefault(c *gin.Context, name string, def bool) (bool, error) {
	v, err := OptionalBool(c, name)
	if err != nil {
		return def, err
	}
	if v == nil {
		return def, nil
	}
	return *v, nil
}

// Page resolves the qmin/qmax pagination window shared by the query
// endpoints.
func Page(c *gin.Context) (*query.PageRange, error) {
	qmin, err := OptionalInt64(c, "qmin")
	if err != nil {
		return nil, err
	}
	qmax, err := OptionalInt64(c, "qmax")
	if err != nil {
		return nil, err
	}
	return query.PageFromBounds(qmin, qmax)
}
