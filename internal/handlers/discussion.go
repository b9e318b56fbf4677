package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clairecicle/Mental-load-app/internal/auth"
	"github.com/clairecicle/Mental-load-app/internal/domain"
	"github.com/clairecicle/Mental-load-app/internal/dto"
	"github.com/clairecicle/Mental-load-app/internal/service"
)

type DiscussionHandler struct {
	svc *service.DiscussionService
}

func NewDiscussionHandler(svc *service.DiscussionService) *DiscussionHandler {
	return &DiscussionHandler{svc: svc}
}

func discussionToResponse(d domain.DiscussionItem) dto.DiscussionResponse {
	return dto.DiscussionResponse{
		ID:            d.ID,
		HouseholdID:   d.HouseholdID,
		CreatedByID:   d.CreatedByID,
		CreatedByName: d.CreatedByName,
		Title:         d.Title,
		Details:       d.Details,
		IsResolved:    d.IsResolved,
		ResolvedAt:    d.ResolvedAt,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

// Create godoc
// @Summary      Create a discussion item
// @Tags         discussions
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.CreateDiscussionRequest  true  "Discussion body"
// @Success      201   {object}  dto.DiscussionResponse
// @Failure      400   {object}  map[string]string
// @Router       /discussions [post]
func (h *DiscussionHandler) Create(c *gin.Context) {
	var req dto.CreateDiscussionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	d, err := h.svc.Create(c.Request.Context(), req.HouseholdID, auth.UserIDFromContext(c), req.Title, req.Details)
	if err != nil {
		if err == service.ErrTitleRequired {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, discussionToResponse(d))
}

// List godoc
// @Summary      List household discussion items
// @Tags         discussions
// @Produce      json
// @Security     CookieAuth
// @Param        household_id  query  string  true  "Household ID"
// @Success      200  {object}  dto.ListDiscussionsResponse
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /discussions [get]
func (h *DiscussionHandler) List(c *gin.Context) {
	householdID, ok := requireHousehold(c)
	if !ok {
		return
	}
	list, err := h.svc.List(c.Request.Context(), householdID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	items := make([]dto.DiscussionResponse, 0, len(list))
	for _, d := range list {
		items = append(items, discussionToResponse(d))
	}
	c.JSON(http.StatusOK, dto.ListDiscussionsResponse{Items: items})
}

// Update godoc
// @Summary      Update a discussion item
// @Tags         discussions
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      string  true  "Discussion ID"
// @Param        body  body      dto.UpdateDiscussionRequest  true  "Partial update"
// @Success      200   {object}  dto.DiscussionResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /discussions/{id} [patch]
func (h *DiscussionHandler) Update(c *gin.Context) {
	var req dto.UpdateDiscussionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	d, err := h.svc.Update(c.Request.Context(), c.Param("id"), req.Title, req.Details)
	if err != nil {
		switch err {
		case service.ErrNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		case service.ErrTitleRequired:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, discussionToResponse(d))
}

// Resolve godoc
// @Summary      Resolve a discussion item
// @Tags         discussions
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      string  true  "Discussion ID"
// @Success      200  {object}  dto.DiscussionResponse
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /discussions/{id}/resolve [post]
func (h *DiscussionHandler) Resolve(c *gin.Context) {
	d, err := h.svc.Resolve(c.Request.Context(), c.Param("id"))
	if err != nil {
		if err == service.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, discussionToResponse(d))
}

// Reopen godoc
// @Summary      Reopen a resolved discussion item
// @Tags         discussions
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      string  true  "Discussion ID"
// @Success      200  {object}  dto.DiscussionResponse
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /discussions/{id}/reopen [post]
func (h *DiscussionHandler) Reopen(c *gin.Context) {
	d, err := h.svc.Reopen(c.Request.Context(), c.Param("id"))
	if err != nil {
		if err == service.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, discussionToResponse(d))
}

// Delete godoc
// @Summary      Delete a discussion item
// @Tags         discussions
// @Security     CookieAuth
// @Param        id   path  string  true  "Discussion ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /discussions/{id} [delete]
func (h *DiscussionHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if err == service.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
