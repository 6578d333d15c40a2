package errors

const (
	HttpInternalError     = "internal_error"
	HttpInvalidDateError  = "invalid_date_range"
	HttpImportActiveError = "import_already_running"
	HttpUnavailableError  = "store_unavailable"
)

// ErrorResponse is the error response body for every API error.
type ErrorResponse struct {
	ErrorType string      `json:"error_type"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
}
