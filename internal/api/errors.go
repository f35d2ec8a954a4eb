package api

// Error types returned in structured error payloads.
const (
	ErrTypeInvalidTimeKey = "INVALID_TIME_KEY"
	ErrTypeInvalidRequest = "INVALID_REQUEST"
	ErrTypeStoreDisabled  = "STORE_DISABLED"
	ErrTypeInternal       = "INTERNAL_ERROR"
)

// ServiceError is the structured error payload returned by the API.
type ServiceError struct {
	Type      string `json:"type"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}
