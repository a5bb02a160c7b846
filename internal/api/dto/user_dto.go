package dto

import (
	"time"

	"bookmore/internal/api/models"
)

// UserJoinRequest: payload for user registration
type UserJoinRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Nickname string `json:"nickname" binding:"required,min=2,max=30"`
	Birth    string `json:"birth" binding:"omitempty,datetime=2006-01-02"`
}

// UserJoinResponse: response payload after successful registration
type UserJoinResponse struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
}

// UserLoginRequest: payload for user login
type UserLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserLoginResponse: carries the signed access token
type UserLoginResponse struct {
	Token string `json:"token"`
}

// UserUpdateRequest: partial profile update, absent fields stay unchanged
type UserUpdateRequest struct {
	Password *string `json:"password" binding:"omitempty,min=8"`
	Nickname *string `json:"nickname" binding:"omitempty,min=2,max=30"`
	Birth    *string `json:"birth" binding:"omitempty,datetime=2006-01-02"`
}

// UserResponse: public profile projection
type UserResponse struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
	Birth    string `json:"birth,omitempty"`
}

func FromModelToUserResponse(user *models.User) *UserResponse {
	resp := &UserResponse{
		ID:       user.ID,
		Email:    user.Email,
		Nickname: user.Nickname,
	}
	if !user.Birth.IsZero() {
		resp.Birth = user.Birth.Format(time.DateOnly)
	}
	return resp
}
