package booking

import (
	"net/http"

	"github.com/matuteb/cancha-rental-backend/internal/court"
	"github.com/matuteb/cancha-rental-backend/internal/pkg/apperror"
	"github.com/matuteb/cancha-rental-backend/internal/pkg/query"
)

var (
	ErrNotFound           = apperror.New(http.StatusNotFound, "booking not found")
	ErrCourtNotFound      = apperror.New(http.StatusNotFound, "the specified court id does not exist")
	ErrTimeConflict       = apperror.New(http.StatusConflict, "registering this booking would make two bookings overlap in time")
	ErrInvalidDay         = apperror.New(http.StatusBadRequest, "the booking day must be a non-negative ordinal")
	ErrInvalidHour        = apperror.New(http.StatusBadRequest, "the booking hour must follow the 24-hour clock (0 <= x < 24)")
	ErrInvalidDuration    = apperror.New(http.StatusBadRequest, "the duration in minutes must be positive and cannot span a full day or more")
	ErrNoChanges          = apperror.New(http.StatusBadRequest, "no modification instructed")
	ErrEmptyContactFilter = apperror.New(http.StatusBadRequest, "cannot search for an empty contact name")
)

// Booking reserves a court for a time interval starting on an ordinal
// day index. The interval may wrap past midnight into day+1, but never
// spans a full day or more.
type Booking struct {
	ID              int64
	CourtID         int64
	Day             int
	StartHour       int
	DurationMinutes int
	Phone           string
	ContactName     *string
}

// FullBooking is the denormalized (booking, owning court) pair returned
// by full reads.
type FullBooking struct {
	Booking Booking
	Court   court.Court
}

// Filter defines the criteria for listing or bulk-deleting bookings.
// Nil/zero fields are omitted from the conjunction.
type Filter struct {
	CourtID     *int64
	Day         query.Criterion
	StartHour   query.Criterion
	Duration    query.Criterion
	Phone       *string
	ContactName *string
	Page        *query.PageRange
}
