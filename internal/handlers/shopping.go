package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clairecicle/Mental-load-app/internal/auth"
	"github.com/clairecicle/Mental-load-app/internal/domain"
	"github.com/clairecicle/Mental-load-app/internal/dto"
	"github.com/clairecicle/Mental-load-app/internal/service"
)

type ShoppingHandler struct {
	svc *service.ShoppingService
}

func NewShoppingHandler(svc *service.ShoppingService) *ShoppingHandler {
	return &ShoppingHandler{svc: svc}
}

func shoppingToResponse(it domain.ShoppingListItem) dto.ShoppingItemResponse {
	return dto.ShoppingItemResponse{
		ID:              it.ID,
		HouseholdID:     it.HouseholdID,
		CreatedByID:     it.CreatedByID,
		CreatedByName:   it.CreatedByName,
		ItemName:        it.ItemName,
		Quantity:        it.Quantity,
		Notes:           it.Notes,
		IsPurchased:     it.IsPurchased,
		PurchasedByID:   it.PurchasedByID,
		PurchasedByName: it.PurchasedByName,
		PurchasedAt:     it.PurchasedAt,
		CreatedAt:       it.CreatedAt,
		UpdatedAt:       it.UpdatedAt,
	}
}

// Create godoc
// @Summary      Add a shopping list item
// @Tags         shopping
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.CreateShoppingItemRequest  true  "Item body"
// @Success      201   {object}  dto.ShoppingItemResponse
// @Failure      400   {object}  map[string]string
// @Router       /shopping [post]
func (h *ShoppingHandler) Create(c *gin.Context) {
	var req dto.CreateShoppingItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	it, err := h.svc.Create(c.Request.Context(), req.HouseholdID, auth.UserIDFromContext(c), req.ItemName, req.Quantity, req.Notes)
	if err != nil {
		if err == service.ErrItemNameRequired {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, shoppingToResponse(it))
}

// List godoc
// @Summary      List the household shopping list
// @Tags         shopping
// @Produce      json
// @Security     CookieAuth
// @Param        household_id  query  string  true  "Household ID"
// @Success      200  {object}  dto.ListShoppingResponse
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /shopping [get]
func (h *ShoppingHandler) List(c *gin.Context) {
	householdID, ok := requireHousehold(c)
	if !ok {
		return
	}
	list, err := h.svc.List(c.Request.Context(), householdID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	items := make([]dto.ShoppingItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, shoppingToResponse(it))
	}
	c.JSON(http.StatusOK, dto.ListShoppingResponse{Items: items})
}

// Update godoc
// @Summary      Update a shopping list item
// @Tags         shopping
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      string  true  "Item ID"
// @Param        body  body      dto.UpdateShoppingItemRequest  true  "Partial update"
// @Success      200   {object}  dto.ShoppingItemResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /shopping/{id} [patch]
func (h *ShoppingHandler) Update(c *gin.Context) {
	var req dto.UpdateShoppingItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	it, err := h.svc.Update(c.Request.Context(), c.Param("id"), req.ItemName, req.Quantity, req.Notes)
	if err != nil {
		switch err {
		case service.ErrNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		case service.ErrItemNameRequired:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, shoppingToResponse(it))
}

// SetPurchased godoc
// @Summary      Check an item off (or back on) the list
// @Tags         shopping
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      string  true  "Item ID"
// @Param        body  body      dto.SetPurchasedRequest  true  "Purchased flag"
// @Success      200   {object}  dto.ShoppingItemResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /shopping/{id}/purchase [post]
func (h *ShoppingHandler) SetPurchased(c *gin.Context) {
	var req dto.SetPurchasedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	it, err := h.svc.MarkPurchased(c.Request.Context(), c.Param("id"), req.IsPurchased, auth.UserIDFromContext(c))
	if err != nil {
		if err == service.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, shoppingToResponse(it))
}

// Delete godoc
// @Summary      Delete a shopping list item
// @Tags         shopping
// @Security     CookieAuth
// @Param        id   path  string  true  "Item ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /shopping/{id} [delete]
func (h *ShoppingHandler) Delete(c *gin.Context) {
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
