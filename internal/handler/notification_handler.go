package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travelshare/travelshare-backend/internal/models"
	"github.com/travelshare/travelshare-backend/internal/service"
)

type NotificationHandler struct {
	notificationService *service.NotificationService
}

func NewNotificationHandler(notificationService *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

func (h *NotificationHandler) GetMyNotifications(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	notifications, err := h.notificationService.GetUserNotifications(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(notifications, "Notifications retrieved successfully"))
}

func (h *NotificationHandler) MarkAsRead(c *fiber.Ctx) error {
	if err := h.notificationService.MarkAsRead(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(nil, "Notification marked as read"))
}

func (h *NotificationHandler) MarkAllAsRead(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	if err := h.notificationService.MarkAllAsRead(userID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(nil, "All notifications marked as read"))
}

func (h *NotificationHandler) GetUnreadCount(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	count, err := h.notificationService.GetUnreadCount(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(models.UnreadCountResponse{Count: count}, "Unread count retrieved"))
}

func (h *NotificationHandler) SubscribeToUser(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	if err := h.notificationService.SubscribeToUser(userID, c.Params("userId")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(nil, "Subscribed"))
}

func (h *NotificationHandler) SubscribeToGroup(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	if err := h.notificationService.SubscribeToGroup(userID, c.Params("groupId")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(nil, "Subscribed"))
}

func (h *NotificationHandler) SubscribeToLocation(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	if err := h.notificationService.SubscribeToLocation(userID, c.Params("locationId")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(nil, "Subscribed"))
}

func (h *NotificationHandler) SubscribeToTag(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	if err := h.notificationService.SubscribeToTag(userID, c.Params("tag")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(nil, "Subscribed"))
}
