package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"luckyten/internal/domain/entity"
	errs "luckyten/internal/domain/error"
	coreport "luckyten/internal/domain/port/core"
	"luckyten/internal/infrastructure/adapter/model"
)

// LedgerRepository implements the atomic settlement commit using GORM.
// The balance update and the history insert share one database transaction
// with a SELECT ... FOR UPDATE row lock on the player, so settlements for
// the same player serialize and a failure rolls both writes back together.
type LedgerRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewLedgerRepository creates a new LedgerRepository instance
func NewLedgerRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *LedgerRepository {
	return &LedgerRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// CommitSettlement applies the settlement delta and appends the history
// record as one atomic unit
func (r *LedgerRepository) CommitSettlement(ctx context.Context, settlement *entity.Settlement) (*entity.Player, error) {
	var updated *entity.Player

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock the player row for the duration of the commit
		var playerModel model.Player
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&playerModel, settlement.PlayerID)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return errs.ErrPlayerNotFound
			}
			return result.Error
		}

		// Re-check funds under the lock. A concurrent settlement may have
		// drained the balance since the resolver's pre-check.
		newBalance := playerModel.Balance + settlement.Delta
		if newBalance < 0 {
			return errs.NewInsufficientFundsError(settlement.PlayerID, settlement.Stake, playerModel.Balance)
		}

		playerModel.Balance = newBalance
		playerModel.UpdatedAt = r.timeProvider.Now()

		result = tx.Model(&playerModel).Updates(map[string]any{
			"balance":    playerModel.Balance,
			"updated_at": playerModel.UpdatedAt,
		})
		if result.Error != nil {
			return result.Error
		}

		settlementModel := model.Settlement{
			PlayerID:     settlement.PlayerID,
			ChosenNumber: settlement.ChosenNumber,
			DrawnNumber:  settlement.DrawnNumber,
			Stake:        settlement.Stake,
			Delta:        settlement.Delta,
			Result:       string(settlement.Result),
			CreatedAt:    settlement.CreatedAt,
		}
		if result := tx.Create(&settlementModel); result.Error != nil {
			return result.Error
		}

		// Write the assigned ID back so callers return the persisted record
		settlement.ID = settlementModel.ID

		updated = &entity.Player{
			ID:             playerModel.ID,
			Login:          playerModel.Login,
			CredentialHash: playerModel.CredentialHash,
		}
		updated.SetBalance(playerModel.Balance, r.timeProvider)
		updated.CreatedAt = playerModel.CreatedAt
		updated.UpdatedAt = playerModel.UpdatedAt

		return nil
	})

	if err != nil {
		if errors.Is(err, errs.ErrPlayerNotFound) || errors.Is(err, errs.ErrInsufficientFunds) {
			return nil, err
		}
		if r.errorClassifier.IsLockError(err) {
			r.logger.Warn("Settlement commit lost a lock race", map[string]any{
				"player_id": settlement.PlayerID,
				"error":     err.Error(),
			})
			return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
		}
		r.logger.Error("Database error during settlement commit", map[string]any{
			"player_id": settlement.PlayerID,
			"error":     err.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	r.logger.Info("Settlement committed", map[string]any{
		"player_id":     settlement.PlayerID,
		"settlement_id": settlement.ID,
		"delta":         settlement.Delta,
		"result":        string(settlement.Result),
		"new_balance":   updated.Balance(),
	})

	return updated, nil
}

// ListByPlayer returns the player's settlement history, oldest first
func (r *LedgerRepository) ListByPlayer(ctx context.Context, playerID uint64) ([]*entity.Settlement, error) {
	var rows []model.Settlement
	result := r.db.WithContext(ctx).
		Where("player_id = ?", playerID).
		Order("id ASC").
		Find(&rows)
	if result.Error != nil {
		r.logger.Error("Database error when listing settlements", map[string]any{
			"player_id": playerID,
			"error":     result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	settlements := make([]*entity.Settlement, 0, len(rows))
	for _, row := range rows {
		settlements = append(settlements, &entity.Settlement{
			ID:           row.ID,
			PlayerID:     row.PlayerID,
			ChosenNumber: row.ChosenNumber,
			DrawnNumber:  row.DrawnNumber,
			Stake:        row.Stake,
			Delta:        row.Delta,
			Result:       entity.SettlementResult(row.Result),
			CreatedAt:    row.CreatedAt,
		})
	}
	return settlements, nil
}
