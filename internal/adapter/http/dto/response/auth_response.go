package response

// LoginResponse carries the signed admin session token.
type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}
