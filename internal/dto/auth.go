package dto

// AdvisorRegisterRequest carries the data needed to register a new advisor.
type AdvisorRegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Phone     string `json:"phone"`
	Company   string `json:"company"`
}

// LoginRequest represents the login credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ForgotPasswordRequest starts the unauthenticated reset flow.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// PasswordResetRequest completes a reset with a previously issued token.
type PasswordResetRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}
