package model

import "github.com/deppfellow/bff-service/internal/validation"

// User is a row of the users table. The password hash never leaves the server.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

// CreateUserPayload is the body of POST /api/v1/users.
type CreateUserPayload struct {
	Username string `json:"username" validate:"required,max=64"`
	Email    string `json:"email" validate:"required,email,max=256"`
	Password string `json:"password" validate:"required,max=72"`
}

func (p *CreateUserPayload) Validate() error {
	return validation.Struct(p)
}
