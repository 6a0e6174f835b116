package bet

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"luckyten/internal/domain/entity"
	errs "luckyten/internal/domain/error"
)

func TestWagerValidator_Validate(t *testing.T) {
	validator := NewWagerValidator(0, 9)

	tests := []struct {
		name        string
		wager       entity.Wager
		expectedErr error
	}{
		{
			name:  "valid wager at lower bound",
			wager: entity.Wager{PlayerID: 1, ChosenNumber: 0, Stake: 1},
		},
		{
			name:  "valid wager at upper bound",
			wager: entity.Wager{PlayerID: 1, ChosenNumber: 9, Stake: 100},
		},
		{
			name:        "missing player",
			wager:       entity.Wager{PlayerID: 0, ChosenNumber: 5, Stake: 100},
			expectedErr: errs.ErrPlayerNotFound,
		},
		{
			name:        "number below range",
			wager:       entity.Wager{PlayerID: 1, ChosenNumber: -1, Stake: 100},
			expectedErr: errs.ErrNumberOutOfRange,
		},
		{
			name:        "number above range",
			wager:       entity.Wager{PlayerID: 1, ChosenNumber: 10, Stake: 100},
			expectedErr: errs.ErrNumberOutOfRange,
		},
		{
			name:        "zero stake",
			wager:       entity.Wager{PlayerID: 1, ChosenNumber: 5, Stake: 0},
			expectedErr: errs.ErrInvalidStake,
		},
		{
			name:        "negative stake",
			wager:       entity.Wager{PlayerID: 1, ChosenNumber: 5, Stake: -10},
			expectedErr: errs.ErrInvalidStake,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.Validate(tt.wager)
			if tt.expectedErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.expectedErr)
			}
		})
	}

	t.Run("range check precedes stake check", func(t *testing.T) {
		// A wager broken in both ways reports the number first
		err := validator.Validate(entity.Wager{PlayerID: 1, ChosenNumber: 42, Stake: 0})
		assert.ErrorIs(t, err, errs.ErrNumberOutOfRange)
	})
}
