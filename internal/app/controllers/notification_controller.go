package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sid77x/profhub/internal/app/models/dto"
	"github.com/sid77x/profhub/internal/app/services"
	"github.com/sid77x/profhub/internal/middleware"
)

// NotificationController handles the notification inbox endpoints
type NotificationController struct {
	notificationService *services.NotificationService
}

// NewNotificationController creates a new NotificationController
func NewNotificationController(notificationService *services.NotificationService) *NotificationController {
	return &NotificationController{
		notificationService: notificationService,
	}
}

// GetNotifications retrieves a user's notifications, most recent first
// @Summary List a user's notifications
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {array} models.Notification "Notifications retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /notifications/{id} [get]
func (c *NotificationController) GetNotifications(ctx *gin.Context) {
	notifications, err := c.notificationService.ListByUser(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, notifications)
}

// GetUnreadCount returns the number of unread notifications for a user
// @Summary Unread notification count
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} dto.UnreadCountResponse "Unread count"
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /notifications/{id}/unread [get]
func (c *NotificationController) GetUnreadCount(ctx *gin.Context) {
	count, err := c.notificationService.UnreadCount(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UnreadCountResponse{UnreadCount: count})
}

// MarkNotificationRead marks a single notification as read
// @Summary Mark a notification read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 200 {object} dto.SuccessResponse "Notification marked read"
// @Failure 400 {object} dto.ErrorResponse "Invalid notification ID"
// @Failure 404 {object} dto.ErrorResponse "Notification not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /notifications/{id}/read [put]
func (c *NotificationController) MarkNotificationRead(ctx *gin.Context) {
	if err := c.notificationService.MarkRead(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// MarkAllNotificationsRead marks all of a user's notifications as read
// @Summary Mark all notifications read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} dto.ModifiedResponse "Number of notifications updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /notifications/{id}/mark-all-read [put]
func (c *NotificationController) MarkAllNotificationsRead(ctx *gin.Context) {
	modified, err := c.notificationService.MarkAllRead(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ModifiedResponse{Success: true, ModifiedCount: modified})
}

// DeleteNotification removes a notification
// @Summary Delete a notification
// @Tags notifications
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 204 "Notification deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid notification ID"
// @Failure 404 {object} dto.ErrorResponse "Notification not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /notifications/{id} [delete]
func (c *NotificationController) DeleteNotification(ctx *gin.Context) {
	if err := c.notificationService.Delete(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
