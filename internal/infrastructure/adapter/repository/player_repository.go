package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"luckyten/internal/domain/entity"
	errs "luckyten/internal/domain/error"
	coreport "luckyten/internal/domain/port/core"
	"luckyten/internal/infrastructure/adapter/model"
)

// PlayerRepository implements the PlayerRepository port using GORM
type PlayerRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewPlayerRepository creates a new PlayerRepository instance
func NewPlayerRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *PlayerRepository {
	return &PlayerRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a player model to a domain entity
func (r *PlayerRepository) modelToEntity(m *model.Player) *entity.Player {
	p := &entity.Player{
		ID:             m.ID,
		Login:          m.Login,
		CredentialHash: m.CredentialHash,
	}
	p.SetBalance(m.Balance, r.timeProvider)
	p.CreatedAt = m.CreatedAt
	p.UpdatedAt = m.UpdatedAt
	return p
}

// handleDatabaseError maps driver errors onto the domain taxonomy
func (r *PlayerRepository) handleDatabaseError(operation string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrPlayerNotFound
	}

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrDuplicateLogin
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"error": err.Error(),
	})
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByID retrieves a player by ID
func (r *PlayerRepository) GetByID(ctx context.Context, id uint64) (*entity.Player, error) {
	var m model.Player
	if result := r.db.WithContext(ctx).First(&m, id); result.Error != nil {
		return nil, r.handleDatabaseError("getting player by id", result.Error)
	}
	return r.modelToEntity(&m), nil
}

// GetByLogin retrieves a player by exact login
func (r *PlayerRepository) GetByLogin(ctx context.Context, login string) (*entity.Player, error) {
	var m model.Player
	if result := r.db.WithContext(ctx).Where("login = ?", login).First(&m); result.Error != nil {
		return nil, r.handleDatabaseError("getting player by login", result.Error)
	}
	return r.modelToEntity(&m), nil
}

// Create persists a new player and writes the assigned ID back to the entity
func (r *PlayerRepository) Create(ctx context.Context, player *entity.Player) error {
	m := model.Player{
		Login:          player.Login,
		CredentialHash: player.CredentialHash,
		Balance:        player.Balance(),
		CreatedAt:      player.CreatedAt,
		UpdatedAt:      player.UpdatedAt,
	}

	if result := r.db.WithContext(ctx).Create(&m); result.Error != nil {
		return r.handleDatabaseError("creating player", result.Error)
	}

	player.ID = m.ID

	r.logger.Info("Player persisted", map[string]any{
		"player_id": m.ID,
		"login":     m.Login,
	})
	return nil
}

// Delete removes a player and its settlement history in one transaction
func (r *PlayerRepository) Delete(ctx context.Context, id uint64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m model.Player
		if result := tx.First(&m, id); result.Error != nil {
			return result.Error
		}

		if result := tx.Where("player_id = ?", id).Delete(&model.Settlement{}); result.Error != nil {
			return result.Error
		}

		return tx.Delete(&m).Error
	})
	if err != nil {
		return r.handleDatabaseError("deleting player", err)
	}

	r.logger.Info("Player removed", map[string]any{
		"player_id": id,
	})
	return nil
}
