package usecase

import (
	"context"

	"luckyten/internal/domain/entity"
)

// BalanceResponse represents the standardized balance lookup result
type BalanceResponse struct {
	PlayerID uint64 `json:"playerId"`
	Balance  int64  `json:"balance"`
}

// AccountUseCase defines account-related business operations
type AccountUseCase interface {
	// CreatePlayer creates a new account with the configured starting
	// balance. Fails with ErrDuplicateLogin if the login is taken and
	// ErrInvalidCredentials if either field is empty.
	CreatePlayer(ctx context.Context, login, secret string) (*entity.Player, error)

	// Authenticate returns the player's ID when login and secret both
	// match. Empty input, an unknown login and a wrong secret all surface
	// the same ErrPlayerNotFound so the response never leaks which field
	// was wrong.
	Authenticate(ctx context.Context, login, secret string) (uint64, error)

	// GetBalance returns the player's current balance, or
	// ErrPlayerNotFound when the ID does not resolve to a player.
	GetBalance(ctx context.Context, playerID uint64) (*BalanceResponse, error)

	// ListSettlements returns the player's settlement history, oldest first
	ListSettlements(ctx context.Context, playerID uint64) ([]*entity.Settlement, error)

	// DeletePlayer removes an account and its history. Callers are
	// responsible for checking the requester may remove this account.
	DeletePlayer(ctx context.Context, playerID uint64) error
}
