package error

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"insufficient funds", ErrInsufficientFunds, CodeInsufficientFunds},
		{"number out of range", ErrNumberOutOfRange, CodeNumberOutOfRange},
		{"invalid stake", ErrInvalidStake, CodeInvalidStake},
		{"invalid wager", ErrInvalidWager, CodeInvalidStake},
		{"invalid credentials", ErrInvalidCredentials, CodeInvalidCredentials},
		{"duplicate login", ErrDuplicateLogin, CodeDuplicateLogin},
		{"player not found", ErrPlayerNotFound, CodePlayerNotFound},
		{"settlement not found", ErrSettlementNotFound, CodeSettlementNotFound},
		{"unknown error", errors.New("something else"), CodeInternalServer},
		{"database connection", ErrDatabaseConnection, CodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ErrorCode(tt.err))
		})
	}

	t.Run("wrapped errors keep their code", func(t *testing.T) {
		wrapped := fmt.Errorf("context: %w", ErrNumberOutOfRange)
		assert.Equal(t, CodeNumberOutOfRange, ErrorCode(wrapped))
	})
}

func TestInsufficientFundsError(t *testing.T) {
	err := NewInsufficientFundsError(42, 5000, 1200)

	t.Run("matches the sentinel", func(t *testing.T) {
		assert.ErrorIs(t, err, ErrInsufficientFunds)
		assert.True(t, IsInsufficientFundsError(err))
		assert.Equal(t, CodeInsufficientFunds, ErrorCode(err))
	})

	t.Run("carries the balance context", func(t *testing.T) {
		var fundsErr *InsufficientFundsError
		assert.True(t, errors.As(err, &fundsErr))
		assert.Equal(t, uint64(42), fundsErr.PlayerID)
		assert.Equal(t, int64(5000), fundsErr.Stake)
		assert.Equal(t, int64(1200), fundsErr.Balance)
	})

	t.Run("exposes structured log fields", func(t *testing.T) {
		var fundsErr *InsufficientFundsError
		assert.True(t, errors.As(err, &fundsErr))

		fields := fundsErr.LogFields()
		assert.Equal(t, "insufficient_funds", fields["error_type"])
		assert.Equal(t, uint64(42), fields["player_id"])
		assert.Equal(t, CodeInsufficientFunds, fields["error_code"])
	})
}

func TestWagerError(t *testing.T) {
	cause := ErrDatabaseConnection
	err := NewWagerError(7, 5, 100, "persistence failure during settlement commit", cause)

	t.Run("unwraps to the cause", func(t *testing.T) {
		assert.ErrorIs(t, err, ErrDatabaseConnection)
	})

	t.Run("message includes wager context", func(t *testing.T) {
		assert.Contains(t, err.Error(), "player 7")
		assert.Contains(t, err.Error(), "number: 5")
		assert.Contains(t, err.Error(), "stake: 100")
	})

	t.Run("exposes structured log fields", func(t *testing.T) {
		var wagerErr *WagerError
		assert.True(t, errors.As(err, &wagerErr))

		fields := wagerErr.LogFields()
		assert.Equal(t, "wager_error", fields["error_type"])
		assert.Equal(t, 5, fields["chosen_number"])
	})
}

func TestIsRejection(t *testing.T) {
	rejections := []error{
		ErrInvalidWager,
		ErrNumberOutOfRange,
		ErrInvalidStake,
		ErrInsufficientFunds,
		ErrInvalidCredentials,
		ErrDuplicateLogin,
		ErrPlayerNotFound,
		NewInsufficientFundsError(1, 100, 50),
		fmt.Errorf("wrapped: %w", ErrInvalidStake),
	}
	for _, err := range rejections {
		assert.True(t, IsRejection(err), "expected rejection: %v", err)
	}

	failures := []error{
		ErrDatabaseConnection,
		ErrInternalServer,
		errors.New("boom"),
	}
	for _, err := range failures {
		assert.False(t, IsRejection(err), "expected failure: %v", err)
	}
}
