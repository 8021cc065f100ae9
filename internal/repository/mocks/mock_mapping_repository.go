package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/spec-kit/healthcare-service/internal/domain"
)

type MockMappingRepository struct {
	mock.Mock
}

func (m *MockMappingRepository) Create(ctx context.Context, patientID, doctorID int64) (*domain.Mapping, error) {
	args := m.Called(ctx, patientID, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Mapping), args.Error(1)
}

func (m *MockMappingRepository) ListSummaries(ctx context.Context) ([]domain.MappingSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MappingSummary), args.Error(1)
}

func (m *MockMappingRepository) ListDoctorsByPatient(ctx context.Context, patientID int64) ([]domain.Doctor, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Doctor), args.Error(1)
}

func (m *MockMappingRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
