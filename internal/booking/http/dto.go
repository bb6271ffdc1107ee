package http

import (
	"github.com/matuteb/cancha-rental-backend/internal/booking"
	courtHttp "github.com/matuteb/cancha-rental-backend/internal/court/http"
)

// BookingResponse uses the persisted-schema field names on the wire.
type BookingResponse struct {
	ID              int64   `json:"id"`
	CourtID         int64   `json:"id_cancha"`
	Day             int     `json:"dia"`
	StartHour       int     `json:"hora"`
	DurationMinutes int     `json:"duracion_minutos"`
	Phone           string  `json:"telefono"`
	ContactName     *string `json:"nombre_contacto"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:              b.ID,
		CourtID:         b.CourtID,
		Day:             b.Day,
		StartHour:       b.StartHour,
		DurationMinutes: b.DurationMinutes,
		Phone:           b.Phone,
		ContactName:     b.ContactName,
	}
}

// FullBookingResponse is the denormalized booking plus owning court
// returned when full=true.
type FullBookingResponse struct {
	Booking BookingResponse         `json:"reserva"`
	Court   courtHttp.CourtResponse `json:"cancha"`
}

func NewFullBookingResponse(fb *booking.FullBooking) FullBookingResponse {
	return FullBookingResponse{
		Booking: NewBookingResponse(&fb.Booking),
		Court:   courtHttp.NewCourtResponse(&fb.Court),
	}
}

func NewBookingListResponse(bookings []*booking.Booking) []BookingResponse {
	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}
	return items
}

func NewFullBookingListResponse(bookings []*booking.FullBooking) []FullBookingResponse {
	items := make([]FullBookingResponse, len(bookings))
	for i, fb := range bookings {
		items[i] = NewFullBookingResponse(fb)
	}
	return items
}
