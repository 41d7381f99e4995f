package registry

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"

	"github.com/solenne/gift-registry-backend/interfaces"
)

// MockRegistry mocks the interfaces.GiftRegistry interface.
type MockRegistry struct {
	mock.Mock
}

// Owner mocks the Owner method
func (m *MockRegistry) Owner(ctx context.Context) (common.Address, error) {
	args := m.Called(ctx)
	return args.Get(0).(common.Address), args.Error(1)
}

// TotalItems mocks the TotalItems method
func (m *MockRegistry) TotalItems(ctx context.Context) (uint64, error) {
	args := m.Called(ctx)
	return args.Get(0).(uint64), args.Error(1)
}

// Count mocks the Count method
func (m *MockRegistry) Count(ctx context.Context) (uint64, error) {
	args := m.Called(ctx)
	return args.Get(0).(uint64), args.Error(1)
}

// Item mocks the Item method
func (m *MockRegistry) Item(ctx context.Context, id uint64) (interfaces.Item, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(interfaces.Item), args.Error(1)
}

// ListAll mocks the ListAll method
func (m *MockRegistry) ListAll(ctx context.Context) ([]interfaces.Item, error) {
	args := m.Called(ctx)
	return args.Get(0).([]interfaces.Item), args.Error(1)
}

// ListAvailable mocks the ListAvailable method
func (m *MockRegistry) ListAvailable(ctx context.Context) ([]interfaces.Item, error) {
	args := m.Called(ctx)
	return args.Get(0).([]interfaces.Item), args.Error(1)
}

// ListPurchased mocks the ListPurchased method
func (m *MockRegistry) ListPurchased(ctx context.Context) ([]interfaces.Item, error) {
	args := m.Called(ctx)
	return args.Get(0).([]interfaces.Item), args.Error(1)
}

// AddItem mocks the AddItem method
func (m *MockRegistry) AddItem(ctx context.Context, details interfaces.ItemDetails) (interfaces.Receipt, error) {
	args := m.Called(ctx, details)
	return args.Get(0).(interfaces.Receipt), args.Error(1)
}

// UpdateItem mocks the UpdateItem method
func (m *MockRegistry) UpdateItem(ctx context.Context, id uint64, details interfaces.ItemDetails) (interfaces.Receipt, error) {
	args := m.Called(ctx, id, details)
	return args.Get(0).(interfaces.Receipt), args.Error(1)
}

// RemoveItem mocks the RemoveItem method
func (m *MockRegistry) RemoveItem(ctx context.Context, id uint64) (interfaces.Receipt, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(interfaces.Receipt), args.Error(1)
}

// Purchase mocks the Purchase method
func (m *MockRegistry) Purchase(ctx context.Context, id uint64, encryptedName []byte) (interfaces.Receipt, error) {
	args := m.Called(ctx, id, encryptedName)
	return args.Get(0).(interfaces.Receipt), args.Error(1)
}

// ResetItem mocks the ResetItem method
func (m *MockRegistry) ResetItem(ctx context.Context, id uint64) (interfaces.Receipt, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(interfaces.Receipt), args.Error(1)
}

// TransferOwnership mocks the TransferOwnership method
func (m *MockRegistry) TransferOwnership(ctx context.Context, newOwner common.Address) (interfaces.Receipt, error) {
	args := m.Called(ctx, newOwner)
	return args.Get(0).(interfaces.Receipt), args.Error(1)
}
