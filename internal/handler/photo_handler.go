package handler

import (
	"encoding/json"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/travelshare/travelshare-backend/internal/models"
	"github.com/travelshare/travelshare-backend/internal/service"
	"github.com/travelshare/travelshare-backend/pkg/utils"
)

const maxImageSize = 10 * 1024 * 1024 // 10MB

type PhotoHandler struct {
	photoService *service.PhotoService
	validator    *utils.Validator
}

func NewPhotoHandler(photoService *service.PhotoService, validator *utils.Validator) *PhotoHandler {
	return &PhotoHandler{
		photoService: photoService,
		validator:    validator,
	}
}

// PublishPhoto accepts a multipart form with an "image" file and a "data"
// field holding the JSON draft.
func (h *PhotoHandler) PublishPhoto(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)
	username, _ := c.Locals("username").(string)

	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("No image selected"))
	}

	if !isValidImageType(file.Header.Get("Content-Type")) {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid file type"))
	}
	if file.Size > maxImageSize {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("File size too large"))
	}

	var req models.PublishPhotoRequest
	if data := c.FormValue("data"); data != "" {
		if err := json.Unmarshal([]byte(data), &req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid draft payload"))
		}
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Failed to read image"))
	}
	defer src.Close()

	resp, err := h.photoService.PublishPhoto(userID, username, req, src)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(resp, "Photo published successfully"))
}

func (h *PhotoHandler) GetDiscoverFeed(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit <= 0 {
		limit = 20
	}

	photos, err := h.photoService.GetRandomPhotos(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(photos, "Photos retrieved successfully"))
}

func (h *PhotoHandler) GetPhotosByType(c *fiber.Ctx) error {
	photos, err := h.photoService.GetPhotosByType(c.Params("type"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(photos, "Photos retrieved successfully"))
}

func (h *PhotoHandler) GetPhotosByAuthor(c *fiber.Ctx) error {
	photos, err := h.photoService.GetPhotosByAuthor(c.Params("authorId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(photos, "Photos retrieved successfully"))
}

func (h *PhotoHandler) SearchPhotos(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Search query is required"))
	}

	photos, err := h.photoService.SearchPhotosByLocation(query)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(photos, "Photos retrieved successfully"))
}

func (h *PhotoHandler) GetPhotoDetails(c *fiber.Ctx) error {
	photo, err := h.photoService.GetPhotoDetails(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(photo, "Photo retrieved successfully"))
}

func (h *PhotoHandler) DeletePhoto(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	if err := h.photoService.DeletePhoto(c.Params("id"), userID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(nil, "Photo deleted successfully"))
}

func (h *PhotoHandler) LikePhoto(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)
	username, _ := c.Locals("username").(string)

	if err := h.photoService.LikePhoto(c.Params("id"), userID, username); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(nil, "Photo liked"))
}

func (h *PhotoHandler) UnlikePhoto(c *fiber.Ctx) error {
	if err := h.photoService.UnlikePhoto(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(nil, "Like removed"))
}

func (h *PhotoHandler) ReportPhoto(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	var req models.ReportPhotoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	if err := h.photoService.ReportPhoto(c.Params("id"), userID, req.Reason); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(nil, "Photo reported"))
}

func (h *PhotoHandler) SharePhoto(c *fiber.Ctx) error {
	var req models.SharePhotoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	if err := h.photoService.SharePhotoToGroups(c.Params("id"), req.GroupIDs); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(nil, "Photo shared"))
}

func (h *PhotoHandler) UnsharePhoto(c *fiber.Ctx) error {
	if err := h.photoService.UnsharePhotoFromGroup(c.Params("id"), c.Params("groupId")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(nil, "Photo unshared"))
}

// ExportPhoto sends the photo's location to the external travel planner.
func (h *PhotoHandler) ExportPhoto(c *fiber.Ctx) error {
	if err := h.photoService.ExportToPlanner(c.Params("id")); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(nil, "Photo exported to planner"))
}

func (h *PhotoHandler) GetGroupPhotos(c *fiber.Ctx) error {
	photos, err := h.photoService.GetGroupPhotos(c.Params("groupId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(photos, "Photos retrieved successfully"))
}

func isValidImageType(contentType string) bool {
	validTypes := map[string]bool{
		"image/jpeg": true,
		"image/png":  true,
		"image/gif":  true,
		"image/webp": true,
	}
	return validTypes[contentType]
}
