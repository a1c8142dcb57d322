package dto

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token string `json:"token"`
}

// ResetTokenResponse carries a freshly issued password reset token.
type ResetTokenResponse struct {
	Token string `json:"token"`
}

// StatusResponse is the short human-readable result of a mutating operation.
type StatusResponse struct {
	Message string `json:"message"`
}
