package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travelshare/travelshare-backend/internal/models"
	"github.com/travelshare/travelshare-backend/internal/service"
	"github.com/travelshare/travelshare-backend/pkg/utils"
)

type CommentHandler struct {
	commentService *service.CommentService
	validator      *utils.Validator
}

func NewCommentHandler(commentService *service.CommentService, validator *utils.Validator) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		validator:      validator,
	}
}

func (h *CommentHandler) GetPhotoComments(c *fiber.Ctx) error {
	comments, err := h.commentService.GetCommentsForPhoto(c.Params("photoId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(comments, "Comments retrieved successfully"))
}

func (h *CommentHandler) AddComment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)
	username, _ := c.Locals("username").(string)

	var req models.AddCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	comment, err := h.commentService.AddComment(c.Params("photoId"), userID, username, req.Content)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(comment, "Comment added successfully"))
}

func (h *CommentHandler) DeleteComment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	if err := h.commentService.DeleteComment(c.Params("id"), userID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(nil, "Comment deleted successfully"))
}
