package model

// LoginRequest only checks presence; an unknown address of any shape is
// answered as a missing account.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse never carries the password hash.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	Usuario any    `json:"usuario"`
}

type RecoverPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ChangePasswordRequest struct {
	Password string `json:"password" validate:"required,min=8"`
}

type TokenResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}
