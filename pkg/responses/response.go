package responses

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/juju/errors"

	"github.com/DhavalSuthar-24/acecourt/pkg/logger"
)

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Message string            `json:"message"`
	Error   string            `json:"error,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// SendError aborts the request with the given status and message. A non-nil
// cause is echoed in the error field.
func SendError(c *gin.Context, statusCode int, message string, cause error) {
	body := ErrorResponse{Message: message}
	if cause != nil {
		body.Error = cause.Error()
	}
	c.AbortWithStatusJSON(statusCode, body)
}

// FromError maps a storage error onto an HTTP status. Errors outside the
// known taxonomy are logged and reported as 500 without details.
func FromError(c *gin.Context, message string, err error) {
	switch {
	case errors.Is(err, errors.NotValid):
		SendError(c, http.StatusBadRequest, message, err)
	case errors.Is(err, errors.AlreadyExists):
		SendError(c, http.StatusConflict, message, err)
	case errors.Is(err, errors.NotFound):
		SendError(c, http.StatusNotFound, message, err)
	default:
		slog.ErrorContext(c.Request.Context(), message, logger.Err(err))
		SendError(c, http.StatusInternalServerError, message, nil)
	}
}

// ValidationError reports request binding failures field by field.
func ValidationError(c *gin.Context, fields map[string]string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
		Message: "Invalid request payload",
		Fields:  fields,
	})
}

// NotFound sends a 404 Not Found error response.
func NotFound(c *gin.Context, resourceName string) {
	SendError(c, http.StatusNotFound, resourceName+" not found", nil)
}

// Unauthorized sends a 401 Unauthorized error response.
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Unauthorized access"
	}
	SendError(c, http.StatusUnauthorized, message, nil)
}

// Forbidden sends a 403 Forbidden error response.
func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = "Access to this resource is forbidden"
	}
	SendError(c, http.StatusForbidden, message, nil)
}

// BadRequest sends a 400 Bad Request error response.
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid request payload or parameters"
	}
	SendError(c, http.StatusBadRequest, message, nil)
}

// BadGateway reports a failed call to an upstream service.
func BadGateway(c *gin.Context, message string, err error) {
	slog.WarnContext(c.Request.Context(), message, logger.Err(err))
	SendError(c, http.StatusBadGateway, message, err)
}

// InternalServerError sends a 500 Internal Server Error response.
func InternalServerError(c *gin.Context, message string) {
	if message == "" {
		message = "An unexpected error occurred on the server"
	}
	SendError(c, http.StatusInternalServerError, message, nil)
}
