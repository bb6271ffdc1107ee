package phone_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matuteb/cancha-rental-backend/internal/pkg/apperror"
	"github.com/matuteb/cancha-rental-backend/internal/pkg/phone"
)

func TestNormalizeValid(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"country code and extra digit", "+54 9 343 450-2306", "+5493434502306"},
		{"plain groups", "343 450 2306", "3434502306"},
		{"dots", "343.450.2306", "3434502306"},
		{"hyphens", "343-450-2306", "3434502306"},
		{"parenthesized area", "(343) 450 2306", "3434502306"},
		{"no separators", "3434502306", "3434502306"},
		{"country code only", "+1 343 450 2306", "+13434502306"},
		{"surrounding whitespace", "  343 450 2306  ", "3434502306"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := phone.Normalize(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalizeInvalid(t *testing.T) {
	cases := []struct {
		name     string
		in       any
		wantCode int
	}{
		{"non-string", 3434502306, http.StatusBadRequest},
		{"nil", nil, http.StatusBadRequest},
		{"empty", "", http.StatusBadRequest},
		{"whitespace only", "   ", http.StatusBadRequest},
		{"too few digits", "343 450", http.StatusUnprocessableEntity},
		{"letters", "call me maybe", http.StatusUnprocessableEntity},
		{"country code too long", "+543 9 343 450 2306", http.StatusUnprocessableEntity},
		{"trailing garbage", "343 450 2306 x12", http.StatusUnprocessableEntity},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := phone.Normalize(tc.in)
			require.Error(t, err)

			var appErr *apperror.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tc.wantCode, appErr.Code)
		})
	}
}
