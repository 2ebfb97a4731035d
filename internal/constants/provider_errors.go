package constants

// Upstream provider error codes
const (
	ErrCodeInvalidAPIKey     = "INVALID_API_KEY"
	ErrCodeRateLimited       = "RATE_LIMITED"
	ErrCodeNetworkError      = "NETWORK_ERROR"
	ErrCodeBadUpstreamStatus = "BAD_UPSTREAM_STATUS"
	ErrCodeMalformedResponse = "MALFORMED_RESPONSE"
	ErrCodeMissingSeries     = "MISSING_SERIES"
)

// Normalization/aggregation error codes
const (
	ErrCodeUnknownCategory  = "UNKNOWN_CATEGORY"
	ErrCodeBadEngineCount   = "BAD_ENGINE_COUNT"
	ErrCodeIncompleteWindow = "INCOMPLETE_DATA_WINDOW"
)

var errorMessages = map[string]string{
	ErrCodeInvalidAPIKey:     "The analytics API key is invalid or not configured",
	ErrCodeRateLimited:       "Rate limit exceeded. Please try again later",
	ErrCodeNetworkError:      "Unable to reach the upstream analytics service",
	ErrCodeBadUpstreamStatus: "The upstream service returned a non-success status",
	ErrCodeMalformedResponse: "The upstream response could not be parsed",
	ErrCodeMissingSeries:     "A required metric series is missing from the response",

	ErrCodeUnknownCategory:  "An aircraft category label has no known translation",
	ErrCodeBadEngineCount:   "An Engines segment was present but not integer-formatted",
	ErrCodeIncompleteWindow: "The requested version's data retention window is incomplete",
}

// GetErrorMessage returns the human-readable message for an error code
func GetErrorMessage(code string) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An unexpected error occurred"
}
