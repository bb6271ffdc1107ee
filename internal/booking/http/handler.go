package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/matuteb/cancha-rental-backend/internal/booking"
	"github.com/matuteb/cancha-rental-backend/internal/pkg/query"
	"github.com/matuteb/cancha-rental-backend/internal/pkg/request"
	"github.com/matuteb/cancha-rental-backend/internal/pkg/response"
)

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

// parseCriterion reads an optional exact-or-"min:max" query parameter.
func parseCriterion(c *gin.Context, param, name string) (query.Criterion, error) {
	raw, ok := c.GetQuery(param)
	if !ok {
		return query.Criterion{}, nil
	}
	return query.ParseCriterion(raw, name)
}

// parseFilter reads the shared booking search criteria.
func parseFilter(c *gin.Context) (booking.Filter, error) {
	var filter booking.Filter
	var err error

	if filter.CourtID, err = request.OptionalInt64(c, "id_cancha"); err != nil {
		return filter, err
	}
	if filter.Day, err = parseCriterion(c, "dia", "day"); err != nil {
		return filter, err
	}
	if filter.StartHour, err = parseCriterion(c, "hora", "hour"); err != nil {
		return filter, err
	}
	if filter.Duration, err = parseCriterion(c, "dur_mins", "duration in minutes"); err != nil {
		return filter, err
	}

	filter.Phone = request.OptionalString(c, "tel")
	filter.ContactName = request.OptionalString(c, "nom_contacto")

	if filter.Page, err = request.Page(c); err != nil {
		return filter, err
	}
	return filter, nil
}

func (h *Handler) list(c *gin.Context, filter booking.Filter) {
	full, err := request.BoolDefault(c, "full", false)
	if err != nil {
		response.Error(c, err)
		return
	}

	if full {
		bookings, err := h.service.ListFull(c.Request.Context(), filter)
		if err != nil {
			response.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, NewFullBookingListResponse(bookings))
		return
	}

	bookings, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewBookingListResponse(bookings))
}

func (h *Handler) List(c *gin.Context) {
	h.list(c, booking.Filter{})
}

func (h *Handler) Query(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.list(c, filter)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := request.PathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	full, err := request.BoolDefault(c, "full", false)
	if err != nil {
		response.Error(c, err)
		return
	}

	if full {
		fb, err := h.service.GetFullByID(c.Request.Context(), id)
		if err != nil {
			response.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, NewFullBookingResponse(fb))
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) Create(c *gin.Context) {
	courtID, err := request.PathID(c, "id_cancha")
	if err != nil {
		response.Error(c, err)
		return
	}

	day, err := request.RequiredInt(c, "dia")
	if err != nil {
		response.Error(c, err)
		return
	}
	hour, err := request.RequiredInt(c, "hora")
	if err != nil {
		response.Error(c, err)
		return
	}
	duration, err := request.RequiredInt(c, "dur_mins")
	if err != nil {
		response.Error(c, err)
		return
	}
	tel, err := request.RequiredString(c, "tel")
	if err != nil {
		response.Error(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), booking.CreateRequest{
		CourtID:         courtID,
		Day:             day,
		StartHour:       hour,
		DurationMinutes: duration,
		Phone:           tel,
		ContactName:     request.OptionalString(c, "nom_contacto"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewBookingResponse(created))
}

func (h *Handler) Update(c *gin.Context) {
	id, err := request.PathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	day, err := request.OptionalInt(c, "dia")
	if err != nil {
		response.Error(c, err)
		return
	}
	hour, err := request.OptionalInt(c, "hora")
	if err != nil {
		response.Error(c, err)
		return
	}
	duration, err := request.OptionalInt(c, "dur_mins")
	if err != nil {
		response.Error(c, err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, booking.UpdateRequest{
		Day:             day,
		StartHour:       hour,
		DurationMinutes: duration,
		Phone:           request.OptionalString(c, "tel"),
		ContactName:     request.OptionalString(c, "nom_contacto"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewBookingResponse(updated))
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := request.PathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	deleted, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewBookingResponse(deleted))
}

func (h *Handler) DeleteQuery(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	deleted, err := h.service.DeleteByQuery(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewBookingListResponse(deleted))
}
