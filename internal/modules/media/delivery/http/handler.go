package handler

import (
	"net/http"

	"careerbridge.org/jobfairhub/internal/modules/media/dto"
	media "careerbridge.org/jobfairhub/internal/modules/media/service"
	"careerbridge.org/jobfairhub/pkg/response"
	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	service media.MediaService
}

func NewMediaHandler(service media.MediaService) *MediaHandler {
	return &MediaHandler{service: service}
}

// Transcribe handles POST /api/admin/media/transcribe.
func (h *MediaHandler) Transcribe(c *gin.Context) {
	var req dto.TranscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.service.Transcribe(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GenerateVoiceover handles POST /api/admin/media/voiceover.
func (h *MediaHandler) GenerateVoiceover(c *gin.Context) {
	var req dto.VoiceoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.service.GenerateVoiceover(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
