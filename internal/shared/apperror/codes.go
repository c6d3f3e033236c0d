package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput = "INVALID_INPUT"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeInvalidState = "INVALID_STATE"

	// Server / transport errors
	CodeBackendError       = "BACKEND_ERROR"
	CodeTransportError     = "TRANSPORT_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)
