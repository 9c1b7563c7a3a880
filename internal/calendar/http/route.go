package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the calendar endpoints under the courts group.
func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/courts/:id")

	// Public: browsing a court's calendar requires no account.
	group.GET("/calendar", h.Month)
	group.GET("/availability", h.Availability)
}
