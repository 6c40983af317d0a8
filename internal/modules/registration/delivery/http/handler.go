package handler

import (
	"net/http"

	"careerbridge.org/jobfairhub/internal/modules/registration/dto"
	registration "careerbridge.org/jobfairhub/internal/modules/registration/service"
	"careerbridge.org/jobfairhub/pkg/response"
	"github.com/gin-gonic/gin"
)

type RegistrationHandler struct {
	service registration.RegistrationService
}

func NewRegistrationHandler(service registration.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{service: service}
}

// Register handles POST /api/registrations.
func (h *RegistrationHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	reg, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterResponse{
		ID:      reg.ID.String(),
		Message: "Thank you for registering. We'll notify you about upcoming job fairs.",
	})
}

// GetAll handles GET /api/admin/registrations. The full set is returned,
// most recent first; there is no pagination.
func (h *RegistrationHandler) GetAll(c *gin.Context) {
	regs, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  regs,
		"total": len(regs),
	})
}
