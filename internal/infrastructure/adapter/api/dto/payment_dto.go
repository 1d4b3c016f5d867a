package dto

// CheckoutRequest represents the API request for starting a credit purchase
type CheckoutRequest struct {
	Credits int64 `json:"credits" binding:"required,gt=0"`
}

// CheckoutResponse carries the provider redirect and the correlation token
type CheckoutResponse struct {
	URL   string `json:"url"`
	Token string `json:"token"`
}

// WebhookAckResponse acknowledges a processed webhook delivery
type WebhookAckResponse struct {
	Received bool `json:"received"`
}

// GiftRequest represents the API request for an administrative credit grant
type GiftRequest struct {
	Credits int64 `json:"credits" binding:"required,gt=0"`
}

// GiftResponse reports the balance after an administrative credit grant
type GiftResponse struct {
	UserID     uint64 `json:"userId"`
	Credits    int64  `json:"credits"`
	NewBalance int64  `json:"newBalance"`
}

// RoleUpdateRequest represents the API request for changing a user's role
type RoleUpdateRequest struct {
	Role string `json:"role" binding:"required,oneof=user admin"`
}
