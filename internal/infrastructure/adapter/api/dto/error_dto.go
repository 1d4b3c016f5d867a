package dto

// ErrorResponse represents a standardized error response for the API.
// Details carries request-level context such as binding failures; it is
// never populated for internal errors.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}
