package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	errs "luckyten/internal/domain/error"
	"luckyten/mocks/port/core"
)

func TestNewPlayer(t *testing.T) {
	fixedTime := time.Date(2023, 5, 10, 12, 0, 0, 0, time.UTC)

	t.Run("should create player with starting balance", func(t *testing.T) {
		// Arrange
		mockTimeProvider := new(core.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)

		// Act
		player, err := NewPlayer("alice", "hashed-secret", 10000, mockTimeProvider)

		// Assert
		assert.NoError(t, err)
		assert.NotNil(t, player)
		assert.Equal(t, "alice", player.Login)
		assert.Equal(t, "hashed-secret", player.CredentialHash)
		assert.Equal(t, int64(10000), player.Balance())
		assert.Equal(t, fixedTime, player.CreatedAt)
		assert.Equal(t, fixedTime, player.UpdatedAt)
	})

	t.Run("should reject empty login", func(t *testing.T) {
		mockTimeProvider := new(core.MockTimeProvider)

		player, err := NewPlayer("", "hashed-secret", 10000, mockTimeProvider)

		assert.Nil(t, player)
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("should reject empty credential hash", func(t *testing.T) {
		mockTimeProvider := new(core.MockTimeProvider)

		player, err := NewPlayer("alice", "", 10000, mockTimeProvider)

		assert.Nil(t, player)
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("should allow zero starting balance", func(t *testing.T) {
		mockTimeProvider := new(core.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)

		player, err := NewPlayer("broke", "hashed-secret", 0, mockTimeProvider)

		assert.NoError(t, err)
		assert.Equal(t, int64(0), player.Balance())
	})
}

func TestPlayer_CanCover(t *testing.T) {
	fixedTime := time.Date(2023, 5, 10, 12, 0, 0, 0, time.UTC)
	mockTimeProvider := new(core.MockTimeProvider)
	mockTimeProvider.On("Now").Return(fixedTime)

	player, err := NewPlayer("alice", "hash", 100, mockTimeProvider)
	assert.NoError(t, err)

	assert.True(t, player.CanCover(99))
	assert.True(t, player.CanCover(100))
	assert.False(t, player.CanCover(101))
}

func TestPlayer_ApplyDelta(t *testing.T) {
	fixedTime := time.Date(2023, 5, 10, 12, 0, 0, 0, time.UTC)
	laterTime := fixedTime.Add(time.Minute)

	t.Run("should apply winning delta", func(t *testing.T) {
		mockTimeProvider := new(core.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime).Once()
		player, err := NewPlayer("alice", "hash", 10000, mockTimeProvider)
		assert.NoError(t, err)

		mockTimeProvider.On("Now").Return(laterTime).Once()
		err = player.ApplyDelta(9, mockTimeProvider)

		assert.NoError(t, err)
		assert.Equal(t, int64(10009), player.Balance())
		assert.Equal(t, laterTime, player.UpdatedAt)
	})

	t.Run("should apply losing delta", func(t *testing.T) {
		mockTimeProvider := new(core.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)
		player, err := NewPlayer("alice", "hash", 10000, mockTimeProvider)
		assert.NoError(t, err)

		err = player.ApplyDelta(-1, mockTimeProvider)

		assert.NoError(t, err)
		assert.Equal(t, int64(9999), player.Balance())
	})

	t.Run("should allow delta down to exactly zero", func(t *testing.T) {
		mockTimeProvider := new(core.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)
		player, err := NewPlayer("alice", "hash", 500, mockTimeProvider)
		assert.NoError(t, err)

		err = player.ApplyDelta(-500, mockTimeProvider)

		assert.NoError(t, err)
		assert.Equal(t, int64(0), player.Balance())
	})

	t.Run("should reject delta that would overdraw the balance", func(t *testing.T) {
		mockTimeProvider := new(core.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)
		player, err := NewPlayer("alice", "hash", 500, mockTimeProvider)
		assert.NoError(t, err)

		err = player.ApplyDelta(-501, mockTimeProvider)

		assert.ErrorIs(t, err, errs.ErrInsufficientFunds)
		assert.Equal(t, int64(500), player.Balance())
	})
}
