package dto

// RegisterRequest describes a buyer account registration payload.
type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

// LoginRequest describes a login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
