package responses

type RegisterUser struct {
	UserID string `json:"user_id"`
}

type LoginUser struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}
