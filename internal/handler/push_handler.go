package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/travelshare/travelshare-backend/internal/models"
	"github.com/travelshare/travelshare-backend/internal/push"
	jwtPkg "github.com/travelshare/travelshare-backend/pkg/jwt"
)

type PushHandler struct {
	router *push.Router
}

func NewPushHandler(router *push.Router) *PushHandler {
	return &PushHandler{
		router: router,
	}
}

type registerTokenRequest struct {
	Token string `json:"token"`
}

// HandleMessage ingests an inbound push payload and returns the rendered
// local notification, if the message produced one.
func (h *PushHandler) HandleMessage(c *fiber.Ctx) error {
	var msg push.RemoteMessage
	if err := c.BodyParser(&msg); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid message payload"))
	}

	notification := h.router.HandleMessage(msg)
	if notification == nil {
		return c.JSON(models.SuccessResponse(nil, "Message dropped"))
	}

	return c.JSON(models.SuccessResponse(notification, "Notification raised"))
}

// RegisterToken persists a fresh registration token for the caller.
// Unauthenticated calls are accepted and dropped silently.
func (h *PushHandler) RegisterToken(c *fiber.Ctx) error {
	var req registerTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	h.router.RegisterToken(bearerUserID(c), req.Token)

	return c.JSON(models.SuccessResponse(nil, "Token accepted"))
}

// bearerUserID extracts the user id from an optional bearer token. A
// missing or invalid token yields an empty id.
func bearerUserID(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}

	claims, err := jwtPkg.ValidateToken(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		return ""
	}

	userID, _ := claims["user_id"].(string)
	return userID
}
