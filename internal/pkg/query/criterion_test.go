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

func TestParseCriterionExact(t *testing.T) {
	c, err := query.ParseCriterion("42", "day")
	require.NoError(t, err)
	assert.False(t, c.IsZero())

	sql, args, err := c.Sqlizer("dia").ToSql()
	require.NoError(t, err)
	assert.Equal(t, "dia = ?", sql)
	assert.Equal(t, []interface{}{int64(42)}, args)

	assert.True(t, c.Matches(42))
	assert.False(t, c.Matches(43))
}

func TestParseCriterionRange(t *testing.T) {
	c, err := query.ParseCriterion("10:20", "hour")
	require.NoError(t, err)

	sql, args, err := c.Sqlizer("hora").ToSql()
	require.NoError(t, err)
	assert.Equal(t, "(hora >= ? AND hora < ?)", sql)
	assert.Equal(t, []interface{}{int64(10), int64(20)}, args)

	// Half-open: min inclusive, max exclusive.
	assert.True(t, c.Matches(10))
	assert.True(t, c.Matches(19))
	assert.False(t, c.Matches(20))
	assert.False(t, c.Matches(9))
}

func TestParseCriterionOpenEnded(t *testing.T) {
	c, err := query.ParseCriterion(":20", "hour")
	require.NoError(t, err)
	assert.True(t, c.Matches(0))
	assert.False(t, c.Matches(20))

	c, err = query.ParseCriterion("10:", "hour")
	require.NoError(t, err)
	assert.True(t, c.Matches(10))
	assert.True(t, c.Matches(query.MaxRangeBound-1))
	assert.False(t, c.Matches(9))

	c, err = query.ParseCriterion(":", "hour")
	require.NoError(t, err)
	assert.True(t, c.Matches(0))
	assert.True(t, c.Matches(123456))
}

func TestParseCriterionDescendingRangeMatchesNothing(t *testing.T) {
	// Bounds are taken as given, not swapped: an out-of-order range is a
	// valid criterion that matches zero values.
	c, err := query.ParseCriterion("20:10", "hour")
	require.NoError(t, err)
	for v := int64(0); v < 30; v++ {
		assert.False(t, c.Matches(v))
	}
}

func TestParseCriterionMalformed(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"not an integer", "abc"},
		{"too many parts", "1:2:3"},
		{"bad min", "x:10"},
		{"bad max", "10:y"},
		{"float", "1.5"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := query.ParseCriterion(tc.raw, "duration in minutes")
			require.Error(t, err)

			var appErr *apperror.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, http.StatusBadRequest, appErr.Code)
			assert.Contains(t, appErr.Message, "duration in minutes")
			assert.Contains(t, appErr.Message, tc.raw)
		})
	}
}

func TestZeroCriterion(t *testing.T) {
	var c query.Criterion
	assert.True(t, c.IsZero())
	assert.Nil(t, c.Sqlizer("dia"))
	assert.True(t, c.Matches(0))
	assert.True(t, c.Matches(-5))
}
