package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NotFoundError signals that an entity does not exist for the given ID or key.
type NotFoundError struct {
	Entity string
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with id: %s", e.Entity, e.Key)
}

// NewNotFoundError builds a NotFoundError for an entity/key pair.
func NewNotFoundError(entity, key string) error {
	return &NotFoundError{Entity: entity, Key: key}
}

// ConflictError signals that a write collides with existing state: a date
// range already booked or blocked, a duplicate city name, or an already
// registered phone number.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// NewConflictError builds a ConflictError with the given user-facing message.
func NewConflictError(msg string) error {
	return &ConflictError{Message: msg}
}

// ValidationError signals a missing or malformed field in a request.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError builds a ValidationError with the given message.
func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}

// ThrottledError signals that the caller must wait before retrying, e.g. an
// OTP resend requested inside the cooldown window.
type ThrottledError struct {
	Message string
}

func (e *ThrottledError) Error() string { return e.Message }

// NewThrottledError builds a ThrottledError with the given message.
func NewThrottledError(msg string) error {
	return &ThrottledError{Message: msg}
}

// ExternalServiceError signals a failure in an outbound dependency such as
// the OTP delivery gateway.
type ExternalServiceError struct {
	Service string
	Err     error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Service, e.Err)
}

func (e *ExternalServiceError) Unwrap() error { return e.Err }

// NewExternalServiceError wraps an outbound dependency failure.
func NewExternalServiceError(service string, err error) error {
	return &ExternalServiceError{Service: service, Err: err}
}

// statusFor maps an error to its HTTP status code.
func statusFor(err error) int {
	var nf *NotFoundError
	var cf *ConflictError
	var vd *ValidationError
	var th *ThrottledError
	var ex *ExternalServiceError
	switch {
	case errors.As(err, &nf):
		return http.StatusNotFound
	case errors.As(err, &cf):
		return http.StatusConflict
	case errors.As(err, &vd):
		return http.StatusBadRequest
	case errors.As(err, &th):
		return http.StatusTooManyRequests
	case errors.As(err, &ex):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// RespondError writes the standard {success:false, message} envelope with the
// status code implied by the error type.
func RespondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		GetLogger().Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
	} else {
		GetLogger().Warn("request rejected", zap.String("path", c.FullPath()), zap.Error(err))
	}
	c.JSON(status, gin.H{"success": false, "message": err.Error()})
}

// RespondOK writes the standard success envelope, merging extra fields into it.
func RespondOK(c *gin.Context, extra gin.H) {
	body := gin.H{"success": true}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// ErrorHandler is a middleware that catches panics and returns a structured
// error instead of dropping the connection.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("unhandled panic", zap.Any("error", err))
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"message": "Internal Server Error",
				})
			}
		}()
		c.Next()
	}
}
