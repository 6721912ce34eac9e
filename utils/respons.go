package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type JSONResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, JSONResponse{
		Status:  code >= 200 && code < 300,
		Message: message,
		Data:    data,
	})
}

// RespondError writes the error envelope. Internal errors are logged and
// replaced by a generic message so store details never reach the client.
func RespondError(c *gin.Context, code int, err error) {
	message := err.Error()
	if code >= http.StatusInternalServerError {
		ErrorLogger.WithFields(map[string]interface{}{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		}).Errorf("request failed: %v", err)
		message = http.StatusText(code)
	}
	c.JSON(code, JSONResponse{
		Status:  false,
		Message: message,
		Data:    nil,
	})
}

// RespondAppError picks the status code from the error kind.
func RespondAppError(c *gin.Context, err error) {
	RespondError(c, StatusFromError(err), err)
}

// StatusFromError maps the error taxonomy onto HTTP status codes.
func StatusFromError(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
