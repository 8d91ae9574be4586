package handlers

import (
	"net/http"

	response "piecework_tracker/internal/adapter/http/dto/response"
	"piecework_tracker/internal/usecase"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	usecase usecase.INotificationUseCase
}

func NewNotificationHandler(uc usecase.INotificationUseCase) *NotificationHandler {
	return &NotificationHandler{usecase: uc}
}

func (h *NotificationHandler) List(c *gin.Context) {
	items, err := h.usecase.ListNotifications(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromNotifications(items))
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	n, err := h.usecase.MarkRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromNotification(n))
}
