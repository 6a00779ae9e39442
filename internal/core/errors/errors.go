package errors

const (
	HttpInternalError        = "internal_error"
	HttpInvalidRequestError  = "invalid_request"
	HttpInvalidJsonError     = "invalid_json"
	HttpMappingError         = "mapping_failed"
	HttpUnknownPlatformError = "unknown_platform"
	HttpContactNotFoundError = "contact_not_found"
)

// ErrorResponse is the error body shared by every HTTP endpoint.
type ErrorResponse struct {
	ErrorType string      `json:"error_type"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
}
