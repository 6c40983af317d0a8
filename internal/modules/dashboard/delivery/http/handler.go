package handler

import (
	"fmt"
	"net/http"

	dashboard "careerbridge.org/jobfairhub/internal/modules/dashboard/service"
	"careerbridge.org/jobfairhub/pkg/response"
	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	service dashboard.DashboardService
}

func NewDashboardHandler(service dashboard.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// GetStats handles GET /api/admin/registrations/stats.
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.service.GetStats(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// ExportCSV handles GET /api/admin/registrations/export. An empty record set
// gets a "no data" notice instead of a file.
func (h *DashboardHandler) ExportCSV(c *gin.Context) {
	data, filename, err := h.service.ExportRegistrations(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "text/csv", data)
}
