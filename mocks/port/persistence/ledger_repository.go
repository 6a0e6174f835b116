package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"luckyten/internal/domain/entity"
)

// MockLedgerRepository is a testify mock for the LedgerRepository port
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) CommitSettlement(ctx context.Context, settlement *entity.Settlement) (*entity.Player, error) {
	args := m.Called(ctx, settlement)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Player), args.Error(1)
}

func (m *MockLedgerRepository) ListByPlayer(ctx context.Context, playerID uint64) ([]*entity.Settlement, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Settlement), args.Error(1)
}
