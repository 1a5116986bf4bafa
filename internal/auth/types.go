package auth

import (
	"time"

	userModel "github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/user"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	User      userModel.Summary `json:"user"`
	ExpiresAt time.Time         `json:"expires_at"`
}

type loginResult struct {
	LoginResponse
	Token string
}

type MeResponse struct {
	User        userModel.Summary `json:"user"`
	LandingPath string            `json:"landing_path"`
}
