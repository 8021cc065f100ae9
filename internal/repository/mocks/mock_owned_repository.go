package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockOwnedRepository[T any, P any] struct {
	mock.Mock
}

func (m *MockOwnedRepository[T, P]) Create(ctx context.Context, ownerID int64, rec *T) (*T, error) {
	args := m.Called(ctx, ownerID, rec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockOwnedRepository[T, P]) ListByOwner(ctx context.Context, ownerID int64) ([]T, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockOwnedRepository[T, P]) GetOwned(ctx context.Context, id, ownerID int64) (*T, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockOwnedRepository[T, P]) UpdateOwned(ctx context.Context, id, ownerID int64, patch P) (*T, error) {
	args := m.Called(ctx, id, ownerID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockOwnedRepository[T, P]) DeleteOwned(ctx context.Context, id, ownerID int64) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}
