package dto

// RegisterRequest represents the API request for account registration
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest represents the API request for password login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// IdentityLoginRequest represents the API request for external identity login
type IdentityLoginRequest struct {
	Token string `json:"token" binding:"required"`
}

// SessionResponse represents a successful authentication
type SessionResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
