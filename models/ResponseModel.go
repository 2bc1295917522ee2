package models

// ErrorResponse is the JSON error envelope returned by all handlers.
type ErrorResponse struct {
	Message string `json:"message" example:"project not found"`
}

// MessageResponse is the JSON success envelope for operations without a body.
type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

// InfoResponse carries the "cannot compute yet" two-tier responses: the
// message is informational, not an error, and the UI renders it as a hint
// rather than a toast.
type InfoResponse struct {
	Info string `json:"info" example:"select a delegate first"`
}
