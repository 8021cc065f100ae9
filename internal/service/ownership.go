package service

import (
	"context"

	"github.com/spec-kit/healthcare-service/internal/domain"
	"github.com/spec-kit/healthcare-service/internal/repository"
	apperrors "github.com/spec-kit/healthcare-service/pkg/util/errorutil"
)

// OwnershipPolicy exposes a resource kind to the identity that created each record.
// Records owned by someone else are indistinguishable from missing ones.
type OwnershipPolicy[T any, P any] struct {
	kind string
	repo repository.OwnedRepository[T, P]
}

// PatientService applies the ownership policy to patients.
type PatientService = OwnershipPolicy[domain.Patient, domain.PatientPatch]

// DoctorService applies the ownership policy to doctors.
type DoctorService = OwnershipPolicy[domain.Doctor, domain.DoctorPatch]

// NewOwnershipPolicy builds a policy; kind is used in not-found messages.
func NewOwnershipPolicy[T any, P any](kind string, repo repository.OwnedRepository[T, P]) *OwnershipPolicy[T, P] {
	return &OwnershipPolicy[T, P]{kind: kind, repo: repo}
}

func NewPatientService(repo repository.PatientRepository) *PatientService {
	return NewOwnershipPolicy("patient", repo)
}

func NewDoctorService(repo repository.DoctorRepository) *DoctorService {
	return NewOwnershipPolicy("doctor", repo)
}

// Kind returns the resource name the policy was built for.
func (s *OwnershipPolicy[T, P]) Kind() string {
	return s.kind
}

// Create stores rec with the caller as its owner.
func (s *OwnershipPolicy[T, P]) Create(ctx context.Context, caller domain.Identity, rec *T) (*T, error) {
	created, err := s.repo.Create(ctx, caller.UserID, rec)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return created, nil
}

// List returns the caller's records ordered by id.
func (s *OwnershipPolicy[T, P]) List(ctx context.Context, caller domain.Identity) ([]T, error) {
	items, err := s.repo.ListByOwner(ctx, caller.UserID)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return items, nil
}

func (s *OwnershipPolicy[T, P]) Get(ctx context.Context, caller domain.Identity, id int64) (*T, error) {
	rec, err := s.repo.GetOwned(ctx, id, caller.UserID)
	if err != nil {
		return nil, s.mapError(err)
	}
	return rec, nil
}

// Update merges patch into the record; fields left nil keep their value.
func (s *OwnershipPolicy[T, P]) Update(ctx context.Context, caller domain.Identity, id int64, patch P) (*T, error) {
	rec, err := s.repo.UpdateOwned(ctx, id, caller.UserID, patch)
	if err != nil {
		return nil, s.mapError(err)
	}
	return rec, nil
}

func (s *OwnershipPolicy[T, P]) Delete(ctx context.Context, caller domain.Identity, id int64) error {
	if err := s.repo.DeleteOwned(ctx, id, caller.UserID); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *OwnershipPolicy[T, P]) mapError(err error) error {
	if apperrors.IsNotFound(err) {
		return apperrors.NewNotFound(s.kind)
	}
	return apperrors.NewInternalError(err)
}
