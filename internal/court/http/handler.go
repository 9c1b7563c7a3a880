package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sportbook-app/sportbook-backend/internal/auth"
	"github.com/sportbook-app/sportbook-backend/internal/court"
	"github.com/sportbook-app/sportbook-backend/internal/pkg/request"
	"github.com/sportbook-app/sportbook-backend/internal/pkg/response"
	"github.com/sportbook-app/sportbook-backend/internal/user"
)

type Handler struct {
	service     court.Service
	userService user.Service
}

func NewHandler(service court.Service, userService user.Service) *Handler {
	return &Handler{
		service:     service,
		userService: userService,
	}
}

func (h *Handler) checkIsSysAdmin(c *gin.Context, userID string) bool {
	u, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		return false
	}
	return u.IsSystemAdmin
}

// writeCourtError maps court service errors to HTTP responses.
func writeCourtError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, court.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "court not found"})
	case errors.Is(err, court.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
	case errors.Is(err, court.ErrEmptyName),
		errors.Is(err, court.ErrInvalidFacility),
		errors.Is(err, court.ErrInvalidSport),
		errors.Is(err, court.ErrInvalidPrice),
		errors.Is(err, court.ErrInvalidRules):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

func (h *Handler) List(c *gin.Context) {
	var req ListCourtsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	courts, total, err := h.service.List(c.Request.Context(), court.Filter{
		FacilityID: req.FacilityID,
		Sport:      req.Sport,
		Page:       req.Page,
		PageSize:   req.PageSize,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list courts"})
		return
	}

	items := make([]CourtResponse, len(courts))
	for i, ct := range courts {
		items[i] = NewCourtResponse(ct)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}

func (h *Handler) Get(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	ct, err := h.service.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		writeCourtError(c, err, "failed to get court")
		return
	}

	c.JSON(http.StatusOK, NewCourtResponse(ct))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateCourtBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	userID := auth.GetUserID(c)
	isSysAdmin := h.checkIsSysAdmin(c, userID)

	ct, err := h.service.Create(c.Request.Context(), court.CreateRequest{
		FacilityID:   body.FacilityID,
		Name:         body.Name,
		Sport:        body.Sport,
		Surface:      body.Surface,
		Indoor:       body.Indoor,
		PricePerHour: body.PricePerHour,
	}, userID, isSysAdmin)
	if err != nil {
		writeCourtError(c, err, "failed to create court")
		return
	}

	c.JSON(http.StatusCreated, NewCourtResponse(ct))
}

func (h *Handler) Update(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body UpdateCourtBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	userID := auth.GetUserID(c)
	isSysAdmin := h.checkIsSysAdmin(c, userID)

	ct, err := h.service.Update(c.Request.Context(), req.ID, court.UpdateRequest{
		Name:         body.Name,
		Sport:        body.Sport,
		Surface:      body.Surface,
		Indoor:       body.Indoor,
		PricePerHour: body.PricePerHour,
	}, userID, isSysAdmin)
	if err != nil {
		writeCourtError(c, err, "failed to update court")
		return
	}

	c.JSON(http.StatusOK, NewCourtResponse(ct))
}

// UpdatePricingRules replaces the court's pricing configuration document.
func (h *Handler) UpdatePricingRules(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body UpdatePricingRulesBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	userID := auth.GetUserID(c)
	isSysAdmin := h.checkIsSysAdmin(c, userID)

	ct, err := h.service.UpdatePricingRules(c.Request.Context(), req.ID, body.PricingRules, userID, isSysAdmin)
	if err != nil {
		writeCourtError(c, err, "failed to update pricing rules")
		return
	}

	c.JSON(http.StatusOK, NewCourtResponse(ct))
}

func (h *Handler) Delete(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	userID := auth.GetUserID(c)
	isSysAdmin := h.checkIsSysAdmin(c, userID)

	if err := h.service.Delete(c.Request.Context(), req.ID, userID, isSysAdmin); err != nil {
		writeCourtError(c, err, "failed to delete court")
		return
	}

	c.Status(http.StatusNoContent)
}
