package dto

import (
	"time"

	"libraryhub/internal/microservices/http-api/models"
)

// CreateUserRequest: parameters for POST /users/, from the query string, a form or a JSON body.
// fullname may be empty.
type CreateUserRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	FullName string `form:"fullname" json:"fullname"`
}

// UserResponse: user as returned by the API
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	FullName  string    `json:"fullname"`
	CreatedAt time.Time `json:"created_at"`
}

func FromUserModel(u models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		FullName:  u.FullName,
		CreatedAt: u.CreatedAt,
	}
}
