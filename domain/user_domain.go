package domain

import (
	"errors"
)

var (
	MessageSuccessRegister = "user registered successfully"
	MessageSuccessLogin    = "login successful"

	MessageFailedRegister = "failed to register user"
	MessageFailedLogin    = "failed to login"

	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrUserNotFound           = errors.New("user not found")
)

type (
	RegisterRequest struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6"`
		Role     string `json:"role" validate:"required,oneof=buyer seller"`
		Location string `json:"location" validate:"required"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	UserResponse struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		Role string `json:"role"`
	}

	AuthResponse struct {
		Token string       `json:"token"`
		User  UserResponse `json:"user"`
	}
)
