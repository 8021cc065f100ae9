package service

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/healthcare-service/internal/domain"
	"github.com/spec-kit/healthcare-service/internal/repository/mocks"
	apperrors "github.com/spec-kit/healthcare-service/pkg/util/errorutil"
)

type patientRepoMock = mocks.MockOwnedRepository[domain.Patient, domain.PatientPatch]

func requireDomainError(t *testing.T, err error, status int, code string) *apperrors.DomainError {
	t.Helper()
	var de *apperrors.DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, status, de.HTTPStatus)
	assert.Equal(t, code, de.Code)
	return de
}

func TestOwnershipPolicy_CreateUsesCaller(t *testing.T) {
	ctx := context.Background()
	repo := new(patientRepoMock)
	svc := NewPatientService(repo)

	in := &domain.Patient{Name: "P1", Age: 30}
	repo.On("Create", ctx, int64(7), in).Return(&domain.Patient{ID: 1, Name: "P1", Age: 30, OwnerID: 7}, nil)

	got, err := svc.Create(ctx, domain.Identity{UserID: 7}, in)
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.OwnerID)
	repo.AssertExpectations(t)
}

func TestOwnershipPolicy_ListScopedToCaller(t *testing.T) {
	ctx := context.Background()
	repo := new(patientRepoMock)
	svc := NewPatientService(repo)

	repo.On("ListByOwner", ctx, int64(1)).Return([]domain.Patient{{ID: 1, OwnerID: 1}}, nil)
	repo.On("ListByOwner", ctx, int64(2)).Return([]domain.Patient{}, nil)

	a, err := svc.List(ctx, domain.Identity{UserID: 1})
	require.NoError(t, err)
	assert.Len(t, a, 1)

	b, err := svc.List(ctx, domain.Identity{UserID: 2})
	require.NoError(t, err)
	assert.Empty(t, b)
}

func TestOwnershipPolicy_NotFoundIsUniform(t *testing.T) {
	ctx := context.Background()
	repo := new(patientRepoMock)
	svc := NewPatientService(repo)
	foreign := domain.Identity{UserID: 2}
	patch := domain.PatientPatch{}

	repo.On("GetOwned", ctx, int64(1), int64(2)).Return(nil, sql.ErrNoRows)
	repo.On("GetOwned", ctx, int64(99), int64(2)).Return(nil, sql.ErrNoRows)
	repo.On("UpdateOwned", ctx, int64(1), int64(2), patch).Return(nil, sql.ErrNoRows)
	repo.On("DeleteOwned", ctx, int64(1), int64(2)).Return(sql.ErrNoRows)

	_, errForeign := svc.Get(ctx, foreign, 1)
	_, errMissing := svc.Get(ctx, foreign, 99)
	_, errUpdate := svc.Update(ctx, foreign, 1, patch)
	errDelete := svc.Delete(ctx, foreign, 1)

	for _, err := range []error{errForeign, errMissing, errUpdate, errDelete} {
		de := requireDomainError(t, err, http.StatusNotFound, apperrors.CodeNotFound)
		assert.Equal(t, "patient not found", de.Message)
	}
	assert.Equal(t, errForeign, errMissing)
	repo.AssertExpectations(t)
}

func TestOwnershipPolicy_UpdatePassesPatch(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockOwnedRepository[domain.Doctor, domain.DoctorPatch])
	svc := NewDoctorService(repo)
	specialty := "Cardiology"

	repo.On("UpdateOwned", ctx, int64(3), int64(1), mock.MatchedBy(func(p domain.DoctorPatch) bool {
		return p.Name == nil && p.Specialization != nil && *p.Specialization == specialty
	})).Return(&domain.Doctor{ID: 3, Name: "House", Specialization: specialty, OwnerID: 1}, nil)

	got, err := svc.Update(ctx, domain.Identity{UserID: 1}, 3, domain.DoctorPatch{Specialization: &specialty})
	require.NoError(t, err)
	assert.Equal(t, "House", got.Name)
	assert.Equal(t, "doctor", svc.Kind())
	repo.AssertExpectations(t)
}

func TestOwnershipPolicy_StorageFailure(t *testing.T) {
	ctx := context.Background()
	repo := new(patientRepoMock)
	svc := NewPatientService(repo)
	boom := errors.New("connection refused")

	repo.On("ListByOwner", ctx, int64(1)).Return(nil, boom)
	repo.On("DeleteOwned", ctx, int64(1), int64(1)).Return(boom)

	_, err := svc.List(ctx, domain.Identity{UserID: 1})
	de := requireDomainError(t, err, http.StatusInternalServerError, apperrors.CodeInternal)
	assert.ErrorIs(t, de, boom)

	err = svc.Delete(ctx, domain.Identity{UserID: 1}, 1)
	requireDomainError(t, err, http.StatusInternalServerError, apperrors.CodeInternal)
}
