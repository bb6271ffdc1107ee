package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/matuteb/cancha-rental-backend/internal/court"
	"github.com/matuteb/cancha-rental-backend/internal/pkg/request"
	"github.com/matuteb/cancha-rental-backend/internal/pkg/response"
)

type Handler struct {
	service court.Service
}

func NewHandler(service court.Service) *Handler {
	return &Handler{service: service}
}

// parseFilter reads the shared nombre/techada/qmin/qmax criteria.
func parseFilter(c *gin.Context) (court.Filter, error) {
	var filter court.Filter

	filter.Name = request.OptionalString(c, "nombre")

	covered, err := request.OptionalBool(c, "techada")
	if err != nil {
		return filter, err
	}
	filter.Covered = covered

	page, err := request.Page(c)
	if err != nil {
		return filter, err
	}
	filter.Page = page

	return filter, nil
}

func (h *Handler) List(c *gin.Context) {
	courts, err := h.service.List(c.Request.Context(), court.Filter{})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewCourtListResponse(courts))
}

func (h *Handler) Get(c *gin.Context) {
	id, err := request.PathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	found, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewCourtResponse(found))
}

func (h *Handler) Query(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	courts, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewCourtListResponse(courts))
}

func (h *Handler) Create(c *gin.Context) {
	name, err := request.RequiredString(c, "nombre")
	if err != nil {
		response.Error(c, err)
		return
	}

	covered, err := request.BoolDefault(c, "techada", false)
	if err != nil {
		response.Error(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), court.CreateRequest{
		Name:    name,
		Covered: covered,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewCourtResponse(created))
}

func (h *Handler) Update(c *gin.Context) {
	id, err := request.PathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	covered, err := request.OptionalBool(c, "techada")
	if err != nil {
		response.Error(c, err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, court.UpdateRequest{
		Name:    request.OptionalString(c, "nombre"),
		Covered: covered,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewCourtResponse(updated))
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
	c.JSON(http.StatusOK, NewCourtResponse(deleted))
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
	c.JSON(http.StatusOK, NewCourtListResponse(deleted))
}
