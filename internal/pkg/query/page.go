package query

import (
	"net/http"

	"github.com/matuteb/cancha-rental-backend/internal/pkg/apperror"
)

var ErrPageBounds = apperror.New(http.StatusBadRequest, "the range minimum cannot be greater than the maximum")

// PageRange is a resolved [min, max) result window, applied as
// OFFSET min LIMIT max-min over an id-ordered result set.
type PageRange struct {
	Offset uint64
	Limit  uint64
}

// PageFromBounds resolves the optional qmin/qmax pagination parameters.
// Both absent means no window. A missing side defaults to 0 or
// MaxRangeBound respectively. min > max is rejected.
func PageFromBounds(qmin, qmax *int64) (*PageRange, error) {
	if qmin == nil && qmax == nil {
		return nil, nil
	}

	min := int64(0)
	if qmin != nil {
		min = *qmin
	}
	max := MaxRangeBound
	if qmax != nil {
		max = *qmax
	}

	if min < 0 || max < 0 {
		return nil, apperror.New(http.StatusBadRequest, "the range bounds cannot be negative")
	}
	if min > max {
		return nil, ErrPageBounds
	}

	return &PageRange{Offset: uint64(min), Limit: uint64(max - min)}, nil
}
