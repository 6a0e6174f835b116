package dto

import "time"

// CreatePlayerRequest represents the API request for creating an account
type CreatePlayerRequest struct {
	Login  string `json:"login" binding:"required"`
	Secret string `json:"secret" binding:"required"`
}

// PlayerResponse represents the API response for a created account
type PlayerResponse struct {
	PlayerID uint64 `json:"playerId"`
	Login    string `json:"login"`
	Balance  int64  `json:"balance"`
}

// LoginRequest represents the API request for authenticating a player
type LoginRequest struct {
	Login  string `json:"login" binding:"required"`
	Secret string `json:"secret" binding:"required"`
}

// LoginResponse carries the session token issued on successful login
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// BalanceResponse represents the API response for a balance lookup
type BalanceResponse struct {
	PlayerID uint64 `json:"playerId"`
	Balance  int64  `json:"balance"`
}
