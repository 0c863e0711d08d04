// File: handlers/notification.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	notificationRepo "entrega/database/repository/notification"
)

// NotificationHandler serves the notification rows clients poll.
type NotificationHandler struct {
	Repo notificationRepo.NotificationRepository
}

func NewNotificationHandler(repo notificationRepo.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{Repo: repo}
}

func (h *NotificationHandler) ListNotificationsHandler(c *gin.Context) {
	ownerID, ok := ownerParam(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	rows, err := h.Repo.ListByOwner(c.Request.Context(), ownerID, limit)
	if err != nil {
		respondDBError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": rows})
}
