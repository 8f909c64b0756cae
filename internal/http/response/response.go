package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tanaoroshi/masterdata-backend/internal/platform/apierr"
)

// ApiResponse is the uniform envelope every endpoint returns: code and
// message always, data on success, error on failure.
type ApiResponse struct {
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Data    any        `json:"data"`
	Error   *ErrorInfo `json:"error"`
}

type ErrorInfo struct {
	ErrorCode string `json:"error_code,omitempty"`
	Details   any    `json:"details,omitempty"`
}

// ListResponse wraps list payloads with pagination echoes.
type ListResponse struct {
	Items any   `json:"items"`
	Total int64 `json:"total"`
	Skip  int   `json:"skip"`
	Limit int   `json:"limit"`
}

func Success(c *gin.Context, code int, data any, message string) {
	c.JSON(code, ApiResponse{Code: code, Message: message, Data: data})
}

func OK(c *gin.Context, data any, message string) {
	Success(c, http.StatusOK, data, message)
}

func Created(c *gin.Context, data any, message string) {
	Success(c, http.StatusCreated, data, message)
}

func Error(c *gin.Context, code int, message string, details any) {
	var info *ErrorInfo
	if details != nil {
		info = &ErrorInfo{Details: details}
	}
	c.JSON(code, ApiResponse{Code: code, Message: message, Error: info})
}

// FromError renders a service error: apierr values keep their status, machine
// code and detail payload, anything else becomes a bare 500.
func FromError(c *gin.Context, err error) {
	status := apierr.Status(err)
	message := err.Error()

	var info *ErrorInfo
	var ae *apierr.Error
	if errors.As(err, &ae) {
		if ae.Message != "" {
			message = ae.Message
		}
		if ae.Code != "" || ae.Details != nil {
			info = &ErrorInfo{ErrorCode: ae.Code, Details: ae.Details}
		}
	}
	c.JSON(status, ApiResponse{Code: status, Message: message, Error: info})
}

// BindError renders a request binding failure.
func BindError(c *gin.Context, err error) {
	Error(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), nil)
}
