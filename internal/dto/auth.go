package dto

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// RegisterRequest represents a student registration form.
// @Description Request body for registering a student
type RegisterRequest struct {
	Username      string `json:"username" form:"username" validate:"required,max=120"`
	Password      string `json:"password" form:"password" validate:"required,min=4,max=72"`
	FullName      string `json:"full_name" form:"full_name" validate:"required,max=255"`
	Qualification string `json:"qualification" form:"qualification" validate:"required,oneof=Foundation Diploma Degree"`
	DOB           string `json:"dob" form:"dob" validate:"required,datetime=2006-01-02"`
}

// LoginRequest represents the login form.
// @Description Request body for logging in
type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// LoginResponse carries the session token and where the client should go next.
// @Description Response body for a successful login
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Redirect  string    `json:"redirect"`
	IsAdmin   bool      `json:"is_admin"`
}

// AuthClaims defines the custom claims of a session token.
type AuthClaims struct {
	UserID  int64 `json:"user_id"`
	IsAdmin bool  `json:"is_admin"`
	jwt.RegisteredClaims
}

// UserProfileResponse is the public view of a user.
type UserProfileResponse struct {
	ID            int64  `json:"id"`
	Username      string `json:"username"`
	FullName      string `json:"full_name"`
	Qualification string `json:"qualification"`
	DOB           string `json:"dob"`
	IsAdmin       bool   `json:"is_admin"`
}

// MessageResponse represents a generic message response.
// @Description Generic message response
type MessageResponse struct {
	Message string `json:"message"`
}
