package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"demo-api/internal/shared/apperror"
	"demo-api/internal/shared/query"
)

// Response is the envelope returned by every endpoint.
type Response struct {
	Success    bool              `json:"success"`
	Data       interface{}       `json:"data,omitempty"`
	Error      string            `json:"error,omitempty"`
	Message    string            `json:"message,omitempty"`
	Details    map[string]string `json:"details,omitempty"`
	Pagination *query.Meta       `json:"pagination,omitempty"`
}

// Success responses
func Success(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Data:    data,
		Message: message,
	})
}

func SuccessWithPagination(c *gin.Context, message string, data interface{}, meta query.Meta) {
	c.JSON(http.StatusOK, Response{
		Success:    true,
		Data:       data,
		Message:    message,
		Pagination: &meta,
	})
}

// Error responses
func ErrorResponse(c *gin.Context, statusCode int, message string, details map[string]string) {
	c.JSON(statusCode, Response{
		Success: false,
		Error:   message,
		Details: details,
	})
}

// HandleError writes the envelope for err using the apperror status table.
// Anything unclassified is logged and reported as a generic internal error.
func HandleError(c *gin.Context, err error) {
	appErr, ok := apperror.As(err)
	if !ok {
		appErr = apperror.Internal(err)
	}

	status := apperror.Status(appErr.Kind)
	if status >= http.StatusInternalServerError {
		log.Error().
			Err(err).
			Str("request_id", c.GetString("request_id")).
			Str("path", c.Request.URL.Path).
			Msg("Request failed")
		ErrorResponse(c, status, apperror.InternalMessage, nil)
		return
	}

	ErrorResponse(c, status, appErr.Message, appErr.Details)
}

// Common error responses
func NotFound(c *gin.Context, message string) {
	HandleError(c, apperror.NotFound(message))
}

func InternalServerError(c *gin.Context) {
	ErrorResponse(c, http.StatusInternalServerError, apperror.InternalMessage, nil)
}
