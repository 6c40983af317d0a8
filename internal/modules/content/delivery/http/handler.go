package handler

import (
	"net/http"
	"strconv"

	"careerbridge.org/jobfairhub/internal/modules/content/dto"
	content "careerbridge.org/jobfairhub/internal/modules/content/service"
	"careerbridge.org/jobfairhub/pkg/response"
	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	service content.ContentService
}

func NewContentHandler(service content.ContentService) *ContentHandler {
	return &ContentHandler{service: service}
}

func (h *ContentHandler) GetEvents(c *gin.Context) {
	events, err := h.service.GetEvents(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": events})
}

func (h *ContentHandler) GetPrograms(c *gin.Context) {
	programs, err := h.service.GetPrograms(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": programs})
}

func (h *ContentHandler) GetImpactStats(c *gin.Context) {
	stats, err := h.service.GetImpactStats(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": stats})
}

func (h *ContentHandler) GetGallery(c *gin.Context) {
	images, err := h.service.GetGallery(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": images})
}

// UploadGalleryImage handles POST /api/admin/gallery (multipart).
func (h *ContentHandler) UploadGalleryImage(c *gin.Context) {
	var req dto.UploadGalleryImageRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	image, err := h.service.AddGalleryImage(c.Request.Context(), req, file)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": image})
}

// DeleteGalleryImage handles DELETE /api/admin/gallery/:id.
func (h *ContentHandler) DeleteGalleryImage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid image id"})
		return
	}

	if err := h.service.RemoveGalleryImage(c.Request.Context(), uint(id)); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "gallery image deleted"})
}
