package request

// LoginRequest is the admin passcode login payload.
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}
