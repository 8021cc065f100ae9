package service

import (
	"context"
	"database/sql"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/healthcare-service/internal/domain"
	"github.com/spec-kit/healthcare-service/internal/repository/mocks"
	apperrors "github.com/spec-kit/healthcare-service/pkg/util/errorutil"
)

func TestMappingService_Link(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		repoErr   error
		wantField string
	}{
		{name: "linked"},
		{
			name:      "unknown patient",
			repoErr:   &pgconn.PgError{Code: "23503", ConstraintName: "patient_doctor_mapping_patient_id_fkey"},
			wantField: "patient_id",
		},
		{
			name:      "unknown doctor",
			repoErr:   &pgconn.PgError{Code: "23503", ConstraintName: "patient_doctor_mapping_doctor_id_fkey"},
			wantField: "doctor_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockMappingRepository)
			svc := NewMappingService(repo)

			if tt.repoErr != nil {
				repo.On("Create", ctx, int64(1), int64(2)).Return(nil, tt.repoErr)
			} else {
				repo.On("Create", ctx, int64(1), int64(2)).Return(&domain.Mapping{ID: 5, PatientID: 1, DoctorID: 2}, nil)
			}

			m, err := svc.Link(ctx, 1, 2)
			if tt.wantField == "" {
				require.NoError(t, err)
				assert.Equal(t, int64(5), m.ID)
				return
			}

			de := requireDomainError(t, err, http.StatusBadRequest, apperrors.CodeValidationFailed)
			fields := de.Details["errors"].([]apperrors.FieldError)
			require.Len(t, fields, 1)
			assert.Equal(t, tt.wantField, fields[0].Field)
		})
	}
}

func TestMappingService_ListsAreUnscoped(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockMappingRepository)
	svc := NewMappingService(repo)

	repo.On("ListSummaries", ctx).Return([]domain.MappingSummary{{ID: 1, PatientName: "P1", DoctorName: "House"}}, nil)
	repo.On("ListDoctorsByPatient", ctx, int64(1)).Return([]domain.Doctor{{ID: 2, Name: "House"}}, nil)

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	docs, err := svc.DoctorsForPatient(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "House", docs[0].Name)
	repo.AssertExpectations(t)
}

func TestMappingService_Unlink(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockMappingRepository)
	svc := NewMappingService(repo)

	repo.On("Delete", ctx, int64(4)).Return(nil).Once()
	repo.On("Delete", ctx, int64(4)).Return(sql.ErrNoRows).Once()

	require.NoError(t, svc.Unlink(ctx, 4))
	err := svc.Unlink(ctx, 4)
	de := requireDomainError(t, err, http.StatusNotFound, apperrors.CodeNotFound)
	assert.Equal(t, "mapping not found", de.Message)
}
