package query_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matuteb/cancha-rental-backend/internal/pkg/apperror"
	"github.com/matuteb/cancha-rental-backend/internal/pkg/query"
)

func ptr(v int64) *int64 { return &v }

func TestPageFromBoundsAbsent(t *testing.T) {
	page, err := query.PageFromBounds(nil, nil)
	require.NoError(t, err)
	assert.Nil(t, page)
}

func TestPageFromBoundsWindow(t *testing.T) {
	page, err := query.PageFromBounds(ptr(5), ptr(10))
	require.NoError(t, err)
	require.NotNil(t, page)
	assert.Equal(t, uint64(5), page.Offset)
	assert.Equal(t, uint64(5), page.Limit)
}

func TestPageFromBoundsDefaults(t *testing.T) {
	page, err := query.PageFromBounds(nil, ptr(10))
	require.NoError(t, err)
	require.NotNil(t, page)
	assert.Equal(t, uint64(0), page.Offset)
	assert.Equal(t, uint64(10), page.Limit)

	page, err = query.PageFromBounds(ptr(3), nil)
	require.NoError(t, err)
	require.NotNil(t, page)
	assert.Equal(t, uint64(3), page.Offset)
	assert.Equal(t, uint64(query.MaxRangeBound-3), page.Limit)
}

func TestPageFromBoundsInverted(t *testing.T) {
	_, err := query.PageFromBounds(ptr(10), ptr(5))
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
}

func TestPageFromBoundsNegative(t *testing.T) {
	_, err := query.PageFromBounds(ptr(-1), ptr(5))
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
}
