package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clairecicle/Mental-load-app/internal/domain"
	"github.com/clairecicle/Mental-load-app/internal/dto"
	"github.com/clairecicle/Mental-load-app/internal/service"
)

type DomainHandler struct {
	svc *service.DomainService
}

func NewDomainHandler(svc *service.DomainService) *DomainHandler {
	return &DomainHandler{svc: svc}
}

func domainToResponse(d domain.Domain) dto.DomainResponse {
	return dto.DomainResponse{
		ID:          d.ID,
		HouseholdID: d.HouseholdID,
		OwnerID:     d.OwnerID,
		OwnerName:   d.OwnerName,
		Name:        d.Name,
		Details:     d.Details,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// Create godoc
// @Summary      Create a responsibility domain
// @Tags         domains
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.CreateDomainRequest  true  "Domain body"
// @Success      201   {object}  dto.DomainResponse
// @Failure      400   {object}  map[string]string
// @Router       /domains [post]
func (h *DomainHandler) Create(c *gin.Context) {
	var req dto.CreateDomainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	d, err := h.svc.Create(c.Request.Context(), req.HouseholdID, req.OwnerID, req.Name, req.Details)
	if err != nil {
		if err == service.ErrNameRequired {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, domainToResponse(d))
}

// List godoc
// @Summary      List household domains
// @Tags         domains
// @Produce      json
// @Security     CookieAuth
// @Param        household_id  query  string  true  "Household ID"
// @Success      200  {object}  dto.ListDomainsResponse
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /domains [get]
func (h *DomainHandler) List(c *gin.Context) {
	householdID, ok := requireHousehold(c)
	if !ok {
		return
	}
	list, err := h.svc.List(c.Request.Context(), householdID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	items := make([]dto.DomainResponse, 0, len(list))
	for _, d := range list {
		items = append(items, domainToResponse(d))
	}
	c.JSON(http.StatusOK, dto.ListDomainsResponse{Items: items})
}

// GetByID godoc
// @Summary      Get a domain by ID
// @Tags         domains
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      string  true  "Domain ID"
// @Success      200  {object}  dto.DomainResponse
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /domains/{id} [get]
func (h *DomainHandler) GetByID(c *gin.Context) {
	d, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if err == service.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, domainToResponse(d))
}

// Update godoc
// @Summary      Update a domain
// @Tags         domains
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      string  true  "Domain ID"
// @Param        body  body      dto.UpdateDomainRequest  true  "Partial update"
// @Success      200   {object}  dto.DomainResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /domains/{id} [patch]
func (h *DomainHandler) Update(c *gin.Context) {
	var req dto.UpdateDomainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	d, err := h.svc.Update(c.Request.Context(), c.Param("id"), req.Name, req.Details, req.OwnerID)
	if err != nil {
		switch err {
		case service.ErrNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		case service.ErrNameRequired:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, domainToResponse(d))
}

// Delete godoc
// @Summary      Delete a domain
// @Tags         domains
// @Security     CookieAuth
// @Param        id   path  string  true  "Domain ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /domains/{id} [delete]
func (h *DomainHandler) Delete(c *gin.Context) {
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
