package dto

type RegisterDTO struct {
	Username string `json:"username" validate:"min=3"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"min=6"`
}

type LoginDTO struct {
	Username string `json:"username" validate:"min=3"`
	Password string `json:"password" validate:"min=6"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
