package serverutils

import "github.com/gofiber/fiber/v2"

// ApiError is a client-visible error carrying its HTTP status.
// Internal failures stay plain errors and surface as 500s.
type ApiError struct {
	Code    int
	Message string
}

func (e *ApiError) Error() string {
	return e.Message
}

func NewApiError(code int, message string) *ApiError {
	return &ApiError{Code: code, Message: message}
}

func BadRequest(message string) *ApiError {
	return NewApiError(fiber.StatusBadRequest, message)
}

func NotFound(message string) *ApiError {
	return NewApiError(fiber.StatusNotFound, message)
}
