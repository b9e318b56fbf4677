package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/clairecicle/Mental-load-app/internal/domain"
	"github.com/clairecicle/Mental-load-app/internal/dto"
	"github.com/clairecicle/Mental-load-app/internal/notify"
	"github.com/clairecicle/Mental-load-app/internal/repo"
)

// PushHandler stores browser push subscriptions and exposes the due
// scan trigger.
type PushHandler struct {
	subs      repo.SubscriptionRepo
	scanner   *notify.Scanner
	publicKey string
}

func NewPushHandler(subs repo.SubscriptionRepo, scanner *notify.Scanner, publicKey string) *PushHandler {
	return &PushHandler{subs: subs, scanner: scanner, publicKey: publicKey}
}

// PublicKey godoc
// @Summary      Fetch the VAPID application server key
// @Tags         push
// @Produce      json
// @Success      200  {object}  dto.PublicKeyResponse
// @Failure      404  {object}  map[string]string
// @Router       /push/public-key [get]
func (h *PushHandler) PublicKey(c *gin.Context) {
	if h.publicKey == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "push is not configured"})
		return
	}
	c.JSON(http.StatusOK, dto.PublicKeyResponse{PublicKey: h.publicKey})
}

// Subscribe godoc
// @Summary      Register a push subscription
// @Tags         push
// @Accept       json
// @Produce      json
// @Param        body  body      dto.SubscribeRequest  true  "Browser subscription"
// @Success      201   {object}  dto.SubscribeResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /push/subscribe [post]
func (h *PushHandler) Subscribe(c *gin.Context) {
	var req dto.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sub, err := h.subs.Create(c.Request.Context(), domain.PushSubscription{
		ID:        uuid.NewString(),
		Endpoint:  req.Endpoint,
		P256dh:    req.Keys.P256dh,
		Auth:      req.Keys.Auth,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, dto.SubscribeResponse{ID: sub.ID})
}

// CheckDueTasks godoc
// @Summary      Scan for tasks that just came due and notify subscribers
// @Tags         push
// @Produce      json
// @Success      200  {object}  dto.CheckDueTasksResponse
// @Failure      500  {object}  map[string]string
// @Router       /cron/check-due-tasks [get]
func (h *PushHandler) CheckDueTasks(c *gin.Context) {
	res, err := h.scanner.Scan(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := dto.CheckDueTasksResponse{
		Success:       true,
		CheckedTasks:  res.CheckedTasks,
		Notifications: make([]dto.DeliveryResult, 0, len(res.Notifications)),
	}
	for _, d := range res.Notifications {
		out.Notifications = append(out.Notifications, dto.DeliveryResult(d))
	}
	c.JSON(http.StatusOK, out)
}
