package models

// Session is the request-scoped identity loaded from Redis by the
// authentication middleware and passed explicitly into every usecase.
type Session struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}
