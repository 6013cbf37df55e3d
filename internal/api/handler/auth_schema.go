package handler

import "github.com/premierleague/fixtures-api/internal/core/domain"

type signupRequest struct {
	FullName string `json:"fullname" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"     validate:"omitempty,oneof=admin user"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// authData is the payload returned by signup and login. PasswordHash is
// excluded by the domain type's json tags.
type authData struct {
	User        *domain.User `json:"user"`
	AccessToken string       `json:"access_token"`
}
