package dto

import "ecobin_backend/internal/models"

// Envelope is the uniform response shape of the auth/user endpoints.
// StatusCode mirrors the HTTP status so the frontend can branch on the
// body alone. Field names follow the frontend contract.
type Envelope struct {
	StatusCode     int           `json:"statusCode"`
	Message        string        `json:"message,omitempty"`
	Error          string        `json:"error,omitempty"`
	Token          string        `json:"token,omitempty"`
	RefreshToken   string        `json:"refreshToken,omitempty"`
	ExpirationTime string        `json:"expirationTime,omitempty"`
	Name           string        `json:"name,omitempty"`
	Role           string        `json:"role,omitempty"`
	Age            int           `json:"age,omitempty"`
	Gender         string        `json:"gender,omitempty"`
	User           *models.User  `json:"ourUsers,omitempty"`
	UserList       []models.User `json:"ourUsersList,omitempty"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest carries the caller's current access token; a valid one
// buys a fresh access token without re-entering credentials.
type RefreshRequest struct {
	Token string `json:"token" binding:"required"`
}

// UpdateUserRequest replaces every scalar field of a user. Password is
// the exception: empty means keep the stored hash.
type UpdateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
	Role     string `json:"role"`
}
