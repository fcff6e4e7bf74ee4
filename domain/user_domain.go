package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister         = "user registered successfully"
	MessageSuccessLogin            = "login success"
	MessageSuccessGetProfile       = "success get profile"
	MessageSuccessUpdateProfile    = "profile updated successfully"
	MessageSuccessSendVerification = "verification email sent"
	MessageSuccessVerifyEmail      = "email verified successfully"
	MessageSuccessForgotPassword   = "password reset email sent"
	MessageSuccessResetPassword    = "password reset successfully"

	MessageFailedRegister         = "failed to register user"
	MessageFailedLogin            = "failed to login"
	MessageFailedGetProfile       = "failed to get profile"
	MessageFailedUpdateProfile    = "failed to update profile"
	MessageFailedSendVerification = "failed to send verification email"
	MessageFailedVerifyEmail      = "failed to verify email"
	MessageFailedForgotPassword   = "failed to process password reset"
	MessageFailedResetPassword    = "failed to reset password"

	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("An account with this email already exists")
	ErrCredentialsInvalid = errors.New("Invalid email or password")
	ErrPasswordTooShort   = errors.New("Password must be at least 6 characters")
	ErrUsernameLength     = errors.New("Username must be between 3 and 50 characters")
	ErrEmailRequired      = errors.New("User email is required. Please complete your profile setup.")
)

type (
	RegisterRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
		Username string `json:"username" validate:"required"`
		FullName string `json:"full_name,omitempty"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	UpdateProfileRequest struct {
		Username string `json:"username,omitempty"`
		FullName string `json:"full_name,omitempty"`
		Bio      string `json:"bio,omitempty"`
	}

	ForgotPasswordRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ResetPasswordRequest struct {
		Token    string `json:"token" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	UserResponse struct {
		ID         string    `json:"id"`
		Email      string    `json:"email"`
		Username   string    `json:"username"`
		FullName   string    `json:"full_name,omitempty"`
		Bio        string    `json:"bio,omitempty"`
		IsVerified bool      `json:"is_verified"`
		CreatedAt  time.Time `json:"created_at"`
	}

	LoginResponse struct {
		Token string       `json:"token"`
		User  UserResponse `json:"user"`
	}
)
