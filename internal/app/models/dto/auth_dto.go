package dto

import "presensia/internal/app/models"

// LoginRequest represents login credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"wali.kelas.7a"`
	Password string `json:"password" binding:"required" example:"rahasia123"`
}

// LoginResponse represents a successful authentication
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresIn int64        `json:"expiresIn" example:"43200"`
	User      UserResponse `json:"user"`
}

// UserResponse represents basic user information
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	RoleType string `json:"roleType" example:"TEACHER" enums:"ADMIN,TEACHER"`
}

// CreateUserRequest represents user creation data (admin only)
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"fullName" binding:"required,max=100"`
	RoleType string `json:"roleType" binding:"required,oneof=ADMIN TEACHER"`
}

// NewUserResponse converts a user model to its response form
func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		FullName: user.FullName,
		RoleType: string(user.RoleType),
	}
}
