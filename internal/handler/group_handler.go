package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travelshare/travelshare-backend/internal/models"
	"github.com/travelshare/travelshare-backend/internal/service"
	"github.com/travelshare/travelshare-backend/pkg/utils"
)

type GroupHandler struct {
	groupService *service.GroupService
	validator    *utils.Validator
}

func NewGroupHandler(groupService *service.GroupService, validator *utils.Validator) *GroupHandler {
	return &GroupHandler{
		groupService: groupService,
		validator:    validator,
	}
}

func (h *GroupHandler) GetMyGroups(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	groups, err := h.groupService.GetUserGroups(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(groups, "Groups retrieved successfully"))
}

func (h *GroupHandler) CreateGroup(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	var req models.CreateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	group, err := h.groupService.CreateGroup(userID, req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(group, "Group created successfully"))
}

func (h *GroupHandler) GetGroup(c *fiber.Ctx) error {
	group, err := h.groupService.GetGroup(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(group, "Group retrieved successfully"))
}

func (h *GroupHandler) JoinGroup(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	if err := h.groupService.JoinGroup(c.Params("id"), userID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(nil, "Joined group"))
}

func (h *GroupHandler) LeaveGroup(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	if err := h.groupService.LeaveGroup(c.Params("id"), userID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(nil, "Left group"))
}

func (h *GroupHandler) SearchGroups(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Search query is required"))
	}

	groups, err := h.groupService.SearchGroups(query)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(groups, "Groups retrieved successfully"))
}
