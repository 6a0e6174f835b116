package core

import (
	"github.com/stretchr/testify/mock"
)

// MockCredentialHasher is a testify mock for the domain CredentialHasher port
type MockCredentialHasher struct {
	mock.Mock
}

func (m *MockCredentialHasher) Hash(secret string) (string, error) {
	args := m.Called(secret)
	return args.String(0), args.Error(1)
}

func (m *MockCredentialHasher) Compare(hash, secret string) bool {
	args := m.Called(hash, secret)
	return args.Bool(0)
}
