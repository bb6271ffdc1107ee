package court

import (
	"net/http"

	"github.com/matuteb/cancha-rental-backend/internal/pkg/apperror"
	"github.com/matuteb/cancha-rental-backend/internal/pkg/query"
)

const MaxNameLength = 40

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "court not found")
	ErrEmptyName       = apperror.New(http.StatusBadRequest, "court name cannot be empty")
	ErrNameTooLong     = apperror.Newf(http.StatusBadRequest, "court name cannot exceed %d characters", MaxNameLength)
	ErrEmptyNameFilter = apperror.New(http.StatusBadRequest, "cannot search for an empty name")
	ErrNoChanges       = apperror.New(http.StatusBadRequest, "no modification instructed")
)

// Court is a rentable space, covered or outdoor.
type Court struct {
	ID      int64
	Name    string
	Covered bool
}

// Filter defines the criteria for listing or bulk-deleting courts.
// Nil fields are omitted from the conjunction.
type Filter struct {
	Name    *string
	Covered *bool
	Page    *query.PageRange
}
