package constants

// Error codes used in API responses.
// These are the machine-readable codes returned in the "error" field.
const (
	// Common error codes
	CodeInvalidJSON   = "invalid_json"
	CodeBadRequest    = "bad_request"
	CodeInternalError = "internal_error"

	// Link codes
	CodeNoURL       = "no_url"
	CodeUnavailable = "unavailable"
	CodeNotFound    = "not_found"
)
