package account

import (
	"context"
	"fmt"

	"luckyten/internal/domain/entity"
	errs "luckyten/internal/domain/error"
	coreport "luckyten/internal/domain/port/core"
	"luckyten/internal/domain/port/persistence"
	"luckyten/internal/domain/port/usecase"
)

// Service implements account business logic: creation, authentication,
// balance lookups and history
type Service struct {
	players         persistence.PlayerRepository
	ledger          persistence.LedgerRepository
	hasher          coreport.CredentialHasher
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	startingBalance int64
}

// NewService creates an account service. New accounts start with
// startingBalance points.
func NewService(
	players persistence.PlayerRepository,
	ledger persistence.LedgerRepository,
	hasher coreport.CredentialHasher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	startingBalance int64,
) *Service {
	return &Service{
		players:         players,
		ledger:          ledger,
		hasher:          hasher,
		timeProvider:    timeProvider,
		logger:          logger,
		startingBalance: startingBalance,
	}
}

// CreatePlayer creates a new account with the configured starting balance
func (s *Service) CreatePlayer(ctx context.Context, login, secret string) (*entity.Player, error) {
	if login == "" || secret == "" {
		return nil, errs.ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(secret)
	if err != nil {
		s.logger.Error("Failed to hash player secret", map[string]any{
			"login": login,
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: credential hashing failed", errs.ErrInternalServer)
	}

	player, err := entity.NewPlayer(login, hash, s.startingBalance, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := s.players.Create(ctx, player); err != nil {
		if errs.IsDuplicateLoginError(err) {
			s.logger.Warn("Account creation with taken login", map[string]any{
				"login": login,
			})
			return nil, err
		}
		s.logger.Error("Failed to create player", map[string]any{
			"login": login,
			"error": err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Player created", map[string]any{
		"player_id": player.ID,
		"login":     login,
		"balance":   player.Balance(),
	})

	return player, nil
}

// Authenticate verifies a login/secret pair and returns the player's ID.
// All failure modes collapse into ErrPlayerNotFound on purpose.
func (s *Service) Authenticate(ctx context.Context, login, secret string) (uint64, error) {
	if login == "" || secret == "" {
		return 0, errs.ErrPlayerNotFound
	}

	player, err := s.players.GetByLogin(ctx, login)
	if err != nil {
		if errs.IsPlayerNotFoundError(err) {
			return 0, errs.ErrPlayerNotFound
		}
		s.logger.Error("Failed to look up player for authentication", map[string]any{
			"login": login,
			"error": err.Error(),
		})
		return 0, err
	}

	if !s.hasher.Compare(player.CredentialHash, secret) {
		s.logger.Warn("Authentication failed", map[string]any{
			"login": login,
		})
		return 0, errs.ErrPlayerNotFound
	}

	return player.ID, nil
}

// GetBalance returns the player's current balance
func (s *Service) GetBalance(ctx context.Context, playerID uint64) (*usecase.BalanceResponse, error) {
	player, err := s.players.GetByID(ctx, playerID)
	if err != nil {
		return nil, err
	}

	return &usecase.BalanceResponse{
		PlayerID: player.ID,
		Balance:  player.Balance(),
	}, nil
}

// ListSettlements returns the player's settlement history, oldest first
func (s *Service) ListSettlements(ctx context.Context, playerID uint64) ([]*entity.Settlement, error) {
	if _, err := s.players.GetByID(ctx, playerID); err != nil {
		return nil, err
	}
	return s.ledger.ListByPlayer(ctx, playerID)
}

// DeletePlayer removes an account and its settlement history. Identity
// checks happen at the transport layer; this only performs the removal.
func (s *Service) DeletePlayer(ctx context.Context, playerID uint64) error {
	if err := s.players.Delete(ctx, playerID); err != nil {
		if errs.IsPlayerNotFoundError(err) {
			return err
		}
		s.logger.Error("Failed to delete player", map[string]any{
			"player_id": playerID,
			"error":     err.Error(),
		})
		return err
	}

	s.logger.Info("Player deleted", map[string]any{
		"player_id": playerID,
	})
	return nil
}
