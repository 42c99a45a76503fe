package errors

const (
	HttpInternalError      = "internal_error"
	HttpInvalidRequest     = "invalid_request"
	HttpUnknownKind        = "unknown_kind"
	HttpNotFound           = "not_found"
	HttpPlatformError      = "platform_error"
	HttpBackfillRunning    = "backfill_already_running"
	HttpBackfillQueueFull  = "backfill_queue_full"
	HttpBackfillNotRunning = "backfill_not_running"
)

// ErrorResponse is the error body returned by every HTTP route.
type ErrorResponse struct {
	ErrorType string      `json:"error_type"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
}

// New builds an ErrorResponse without details.
func New(errorType, message string) ErrorResponse {
	return ErrorResponse{ErrorType: errorType, Message: message}
}
