package httperror

import "net/http"

// Error is an error that carries the HTTP status it should be answered with.
type Error struct {
	Status  int
	Code    string
	Message string
	Details any
}

func (e *Error) Error() string {
	return e.Message
}

func New(status int, code, message string, details any) *Error {
	return &Error{
		Status:  status,
		Code:    code,
		Message: message,
		Details: details,
	}
}

func BadRequest(code, message string, details any) *Error {
	return New(http.StatusBadRequest, code, message, details)
}

func NotFound(code, message string, details any) *Error {
	return New(http.StatusNotFound, code, message, details)
}

func ServiceUnavailable(code, message string, details any) *Error {
	return New(http.StatusServiceUnavailable, code, message, details)
}

// ValidationFailed reports field-level input violations keyed by field name.
func ValidationFailed(fields map[string]string) *Error {
	return BadRequest("request.validation_failed", "Validation failed", fields)
}
