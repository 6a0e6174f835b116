package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	errs "luckyten/internal/domain/error"
	"luckyten/internal/infrastructure/adapter/logger"
	timeProvider "luckyten/internal/infrastructure/adapter/time"
)

func TestPlayerRepository_HandleDatabaseError(t *testing.T) {
	// No database needed: these tests pin the mapping from driver errors
	// onto the domain taxonomy. The "exactly one record per login"
	// guarantee itself rides on the uniqueIndex on players.login; the
	// violation the index raises must surface as ErrDuplicateLogin.
	repo := NewPlayerRepository(nil, timeProvider.NewRealTimeProvider(), logger.NewNoopLogger())

	t.Run("maps unique constraint violations to duplicate login", func(t *testing.T) {
		driverErr := errors.New(`ERROR: duplicate key value violates unique constraint "idx_players_login" (SQLSTATE 23505)`)

		err := repo.handleDatabaseError("creating player", driverErr)

		assert.ErrorIs(t, err, errs.ErrDuplicateLogin)
		assert.True(t, errs.IsDuplicateLoginError(err))
	})

	t.Run("maps missing records to player not found", func(t *testing.T) {
		err := repo.handleDatabaseError("getting player by id", gorm.ErrRecordNotFound)

		assert.ErrorIs(t, err, errs.ErrPlayerNotFound)
	})

	t.Run("wraps everything else as a connection error", func(t *testing.T) {
		driverErr := errors.New("dial tcp 127.0.0.1:5432: connection refused")

		err := repo.handleDatabaseError("creating player", driverErr)

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		assert.False(t, errs.IsRejection(err))
	})
}
