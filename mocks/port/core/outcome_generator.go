package core

import (
	"github.com/stretchr/testify/mock"
)

// MockOutcomeGenerator is a testify mock for the domain OutcomeGenerator port
type MockOutcomeGenerator struct {
	mock.Mock
}

func (m *MockOutcomeGenerator) Draw(low, high int) int {
	args := m.Called(low, high)
	return args.Int(0)
}
