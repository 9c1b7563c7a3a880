package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sportbook-app/sportbook-backend/internal/auth"
	"github.com/sportbook-app/sportbook-backend/internal/facility"
	"github.com/sportbook-app/sportbook-backend/internal/pkg/request"
	"github.com/sportbook-app/sportbook-backend/internal/pkg/response"
	"github.com/sportbook-app/sportbook-backend/internal/user"
)

type Handler struct {
	service     facility.Service
	userService user.Service
}

func NewHandler(service facility.Service, userService user.Service) *Handler {
	return &Handler{
		service:     service,
		userService: userService,
	}
}

// checkIsSysAdmin helper checks if the current user is a system admin
func (h *Handler) checkIsSysAdmin(c *gin.Context, userID string) bool {
	u, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		return false
	}
	return u.IsSystemAdmin
}

func (h *Handler) List(c *gin.Context) {
	var req ListFacilitiesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	filter := facility.Filter{
		OwnerID:  req.OwnerID,
		City:     req.City,
		Keyword:  req.Keyword,
		Page:     req.Page,
		PageSize: req.PageSize,
	}

	facilities, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list facilities"})
		return
	}

	items := make([]FacilityResponse, len(facilities))
	for i, f := range facilities {
		items[i] = NewFacilityResponse(f)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}

func (h *Handler) Get(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	f, err := h.service.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		if errors.Is(err, facility.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "facility not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get facility"})
		return
	}

	c.JSON(http.StatusOK, NewFacilityResponse(f))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateFacilityBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	userID := auth.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	f, err := h.service.Create(c.Request.Context(), userID, facility.CreateRequest{
		Name:           body.Name,
		Description:    body.Description,
		Address:        body.Address,
		City:           body.City,
		Phone:          body.Phone,
		OpeningTime:    body.OpeningTime,
		ClosingTime:    body.ClosingTime,
		ClosedWeekdays: body.ClosedWeekdays,
		Amenities:      body.Amenities,
		Latitude:       body.Latitude,
		Longitude:      body.Longitude,
	})
	if err != nil {
		switch {
		case errors.Is(err, facility.ErrEmptyName),
			errors.Is(err, facility.ErrInvalidOpeningHours),
			errors.Is(err, facility.ErrInvalidClosedWeekday):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create facility"})
		}
		return
	}

	c.JSON(http.StatusCreated, NewFacilityResponse(f))
}

func (h *Handler) Update(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body UpdateFacilityBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	userID := auth.GetUserID(c)
	isSysAdmin := h.checkIsSysAdmin(c, userID)

	f, err := h.service.Update(c.Request.Context(), req.ID, facility.UpdateRequest{
		Name:           body.Name,
		Description:    body.Description,
		Address:        body.Address,
		City:           body.City,
		Phone:          body.Phone,
		OpeningTime:    body.OpeningTime,
		ClosingTime:    body.ClosingTime,
		ClosedWeekdays: body.ClosedWeekdays,
		Amenities:      body.Amenities,
		PhotoFileIDs:   body.PhotoFileIDs,
	}, userID, isSysAdmin)
	if err != nil {
		switch {
		case errors.Is(err, facility.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "facility not found"})
		case errors.Is(err, facility.ErrPermissionDenied):
			c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		case errors.Is(err, facility.ErrEmptyName),
			errors.Is(err, facility.ErrInvalidOpeningHours),
			errors.Is(err, facility.ErrInvalidClosedWeekday):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update facility"})
		}
		return
	}

	c.JSON(http.StatusOK, NewFacilityResponse(f))
}

func (h *Handler) Delete(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	userID := auth.GetUserID(c)
	isSysAdmin := h.checkIsSysAdmin(c, userID)

	err := h.service.Delete(c.Request.Context(), req.ID, userID, isSysAdmin)
	if err != nil {
		switch {
		case errors.Is(err, facility.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "facility not found"})
		case errors.Is(err, facility.ErrPermissionDenied):
			c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete facility"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
