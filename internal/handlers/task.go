package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/clairecicle/Mental-load-app/internal/dto"
	"github.com/clairecicle/Mental-load-app/internal/service"
)

type TaskHandler struct {
	svc *service.TaskService
}

func NewTaskHandler(svc *service.TaskService) *TaskHandler {
	return &TaskHandler{svc: svc}
}

// Create godoc
// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.CreateTaskRequest  true  "Task body"
// @Success      201   {object}  dto.TaskResponse
// @Failure      400   {object}  map[string]string
// @Router       /tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	t, err := h.svc.Create(c.Request.Context(), service.CreateTaskInput{
		HouseholdID:       req.HouseholdID,
		DomainID:          req.DomainID,
		OwnerID:           req.OwnerID,
		Title:             req.Title,
		Details:           req.Details,
		DueDate:           req.DueDate,
		DueTime:           req.DueTime,
		FrequencyType:     req.FrequencyType,
		FrequencyInterval: req.FrequencyInterval,
	})
	if err != nil {
		if err == service.ErrTitleRequired {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, dto.NewTaskResponse(t, time.Now()))
}

// List godoc
// @Summary      List household tasks
// @Tags         tasks
// @Produce      json
// @Security     CookieAuth
// @Param        household_id  query     string  true   "Household ID"
// @Param        owner_id      query     string  false  "Filter by owner"
// @Success      200  {object}  dto.ListTasksResponse
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /tasks [get]
func (h *TaskHandler) List(c *gin.Context) {
	householdID, ok := requireHousehold(c)
	if !ok {
		return
	}
	list, err := h.svc.List(c.Request.Context(), householdID, c.Query("owner_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.ListTasksResponse{Items: dto.NewTaskResponses(list, time.Now())})
}

// GetByID godoc
// @Summary      Get a task by ID
// @Tags         tasks
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      string  true  "Task ID"
// @Success      200  {object}  dto.TaskResponse
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /tasks/{id} [get]
func (h *TaskHandler) GetByID(c *gin.Context) {
	t, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if err == service.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.NewTaskResponse(t, time.Now()))
}

// Today godoc
// @Summary      List tasks due today
// @Tags         tasks
// @Produce      json
// @Security     CookieAuth
// @Param        household_id  query  string  true  "Household ID"
// @Success      200  {object}  dto.ListTasksResponse
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /tasks/today [get]
func (h *TaskHandler) Today(c *gin.Context) {
	householdID, ok := requireHousehold(c)
	if !ok {
		return
	}
	list, err := h.svc.Today(c.Request.Context(), householdID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.ListTasksResponse{Items: dto.NewTaskResponses(list, time.Now())})
}

// TodayGrouped godoc
// @Summary      Today's tasks bucketed by time of day
// @Tags         tasks
// @Produce      json
// @Security     CookieAuth
// @Param        household_id  query  string  true  "Household ID"
// @Success      200  {object}  dto.GroupedTasksResponse
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /tasks/today/grouped [get]
func (h *TaskHandler) TodayGrouped(c *gin.Context) {
	householdID, ok := requireHousehold(c)
	if !ok {
		return
	}
	grouped, err := h.svc.TodayGrouped(c.Request.Context(), householdID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.NewGroupedTasksResponse(grouped, time.Now()))
}

// Upcoming godoc
// @Summary      List tasks due after today
// @Tags         tasks
// @Produce      json
// @Security     CookieAuth
// @Param        household_id  query  string  true  "Household ID"
// @Success      200  {object}  dto.ListTasksResponse
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /tasks/upcoming [get]
func (h *TaskHandler) Upcoming(c *gin.Context) {
	householdID, ok := requireHousehold(c)
	if !ok {
		return
	}
	list, err := h.svc.Upcoming(c.Request.Context(), householdID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.ListTasksResponse{Items: dto.NewTaskResponses(list, time.Now())})
}

// Overdue godoc
// @Summary      List overdue tasks
// @Tags         tasks
// @Produce      json
// @Security     CookieAuth
// @Param        household_id  query  string  true  "Household ID"
// @Success      200  {object}  dto.ListTasksResponse
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /tasks/overdue [get]
func (h *TaskHandler) Overdue(c *gin.Context) {
	householdID, ok := requireHousehold(c)
	if !ok {
		return
	}
	list, err := h.svc.Overdue(c.Request.Context(), householdID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.ListTasksResponse{Items: dto.NewTaskResponses(list, time.Now())})
}

// Update godoc
// @Summary      Update a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      string  true  "Task ID"
// @Param        body  body      dto.UpdateTaskRequest  true  "Partial update"
// @Success      200   {object}  dto.TaskResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /tasks/{id} [patch]
func (h *TaskHandler) Update(c *gin.Context) {
	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t, err := h.svc.Update(c.Request.Context(), c.Param("id"), service.UpdateTaskInput{
		DomainID:          req.DomainID,
		OwnerID:           req.OwnerID,
		Title:             req.Title,
		Details:           req.Details,
		DueDate:           req.DueDate,
		DueTime:           req.DueTime,
		FrequencyType:     req.FrequencyType,
		FrequencyInterval: req.FrequencyInterval,
		IsCompleted:       req.IsCompleted,
		IsSnoozed:         req.IsSnoozed,
		SnoozedUntil:      req.SnoozedUntil,
	})
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
	c.JSON(http.StatusOK, dto.NewTaskResponse(t, time.Now()))
}

// Complete godoc
// @Summary      Mark a task as completed
// @Tags         tasks
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      string  true  "Task ID"
// @Success      200  {object}  dto.TaskResponse
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /tasks/{id}/complete [post]
func (h *TaskHandler) Complete(c *gin.Context) {
	t, err := h.svc.Complete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if err == service.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.NewTaskResponse(t, time.Now()))
}

// Reopen godoc
// @Summary      Reopen a completed task
// @Tags         tasks
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      string  true  "Task ID"
// @Success      200  {object}  dto.TaskResponse
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /tasks/{id}/reopen [post]
func (h *TaskHandler) Reopen(c *gin.Context) {
	t, err := h.svc.Reopen(c.Request.Context(), c.Param("id"))
	if err != nil {
		if err == service.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.NewTaskResponse(t, time.Now()))
}

// Delete godoc
// @Summary      Delete a task
// @Tags         tasks
// @Security     CookieAuth
// @Param        id   path  string  true  "Task ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /tasks/{id} [delete]
func (h *TaskHandler) Delete(c *gin.Context) {
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

func requireHousehold(c *gin.Context) (string, bool) {
	householdID := c.Query("household_id")
	if householdID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "household_id is required"})
		return "", false
	}
	return householdID, true
}
