package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIError is the error value services raise for expected failures; the
// controller boundary maps it onto the error envelope with a matching HTTP
// status. Anything else becomes a generic 500.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

func NewAPIError(statusCode int, message string) *APIError {
	return &APIError{StatusCode: statusCode, Message: message}
}

func JSONSuccess(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, gin.H{
		"statusCode": code,
		"data":       data,
		"message":    message,
		"success":    true,
	})
}

func JSONError(c *gin.Context, err error) {
	statusCode := http.StatusInternalServerError
	message := "Something went wrong"

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		statusCode = apiErr.StatusCode
		message = apiErr.Message
	}

	c.JSON(statusCode, gin.H{
		"statusCode": statusCode,
		"message":    message,
		"success":    false,
		"errors":     []string{},
	})
}
