package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/canchas")
	{
		group.GET("/", h.List)
		group.GET("/id/:id", h.Get)
		group.GET("/q", h.Query)
		group.POST("/", h.Create)
		group.PATCH("/id/:id", h.Update)
		group.DELETE("/id/:id", h.Delete)
		group.DELETE("/q", h.DeleteQuery)
	}
}
