package constants

// Error messages used in API responses.
// These are the human-readable messages returned in the "message" field.
const (
	// Common messages
	MsgInvalidJSON   = "Request body is not valid JSON"
	MsgInternalError = "An internal error occurred"

	// Link messages
	MsgNoURL            = "No URL to shorten"
	MsgUnavailable      = "Alias is unavailable"
	MsgAliasNotFound    = "Alias not found"
	MsgAliasNotProvided = "Alias not provided"
)
