package handler

import (
	"net/url"

	"histbench-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

// MediaHandler serves media metadata and conversions
type MediaHandler struct {
	service service.MediaService
}

func NewMediaHandler(service service.MediaService) *MediaHandler {
	return &MediaHandler{service: service}
}

// wildcardPath returns the unescaped "*" segment of the route.
func wildcardPath(c *fiber.Ctx) string {
	raw := c.Params("*")
	if p, err := url.PathUnescape(raw); err == nil {
		return p
	}
	return raw
}

// GetInfo godoc
// @Summary Media file metadata
// @Tags media
// @Produce json
// @Param path path string true "File path relative to the media root"
// @Success 200 {object} dto.MediaInfoResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Router /media-info/{path} [get]
func (h *MediaHandler) GetInfo(c *fiber.Ctx) error {
	info, err := h.service.GetInfo(c.UserContext(), wildcardPath(c))
	if err != nil {
		return err
	}
	return c.JSON(info)
}

// Convert godoc
// @Summary Browser-friendly media
// @Description TIFF images are converted to PNG. Other files are returned unchanged.
// @Tags media
// @Produce octet-stream
// @Param path path string true "File path relative to the media root"
// @Success 200 {file} binary
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /media-convert/{path} [get]
func (h *MediaHandler) Convert(c *fiber.Ctx) error {
	content, err := h.service.Convert(c.UserContext(), wildcardPath(c))
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, content.ContentType)
	c.Set(fiber.HeaderCacheControl, "public, max-age=3600")
	// SendStream closes the body once the response is written.
	if content.Size >= 0 {
		return c.SendStream(content.Body, int(content.Size))
	}
	return c.SendStream(content.Body)
}
