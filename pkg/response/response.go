package response

import (
	"errors"
	"log"
	"net/http"

	"careerbridge.org/jobfairhub/pkg/apperror"
	"github.com/gin-gonic/gin"
)

// ResponseError standardized error response
func ResponseError(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)

	// Log internal errors
	if code >= http.StatusInternalServerError {
		log.Printf("[Internal Error]: %v", err)
	}

	var valErr *apperror.ValidationError
	if errors.As(err, &valErr) {
		c.JSON(code, gin.H{"error": valErr.Error(), "fields": valErr.Fields})
		return
	}

	c.JSON(code, gin.H{"error": err.Error()})
}
