package service

import (
	"context"
	"strings"

	"github.com/spec-kit/healthcare-service/internal/domain"
	"github.com/spec-kit/healthcare-service/internal/repository"
	apperrors "github.com/spec-kit/healthcare-service/pkg/util/errorutil"
)

// MappingService links doctors to patients. Links are visible to every authenticated caller.
type MappingService struct {
	mappings repository.MappingRepository
}

func NewMappingService(mappings repository.MappingRepository) *MappingService {
	return &MappingService{mappings: mappings}
}

// Link records that doctorID treats patientID. Unknown ids surface as validation errors
// on the offending field.
func (s *MappingService) Link(ctx context.Context, patientID, doctorID int64) (*domain.Mapping, error) {
	m, err := s.mappings.Create(ctx, patientID, doctorID)
	if err != nil {
		if constraint, ok := apperrors.ForeignKeyConstraint(err); ok {
			return nil, unknownReference(constraint)
		}
		return nil, apperrors.NewInternalError(err)
	}
	return m, nil
}

func (s *MappingService) ListAll(ctx context.Context) ([]domain.MappingSummary, error) {
	items, err := s.mappings.ListSummaries(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return items, nil
}

// DoctorsForPatient returns the doctors linked to patientID, empty when there are none.
func (s *MappingService) DoctorsForPatient(ctx context.Context, patientID int64) ([]domain.Doctor, error) {
	items, err := s.mappings.ListDoctorsByPatient(ctx, patientID)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return items, nil
}

func (s *MappingService) Unlink(ctx context.Context, id int64) error {
	if err := s.mappings.Delete(ctx, id); err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.NewNotFound("mapping")
		}
		return apperrors.NewInternalError(err)
	}
	return nil
}

func unknownReference(constraint string) error {
	field, msg := "patient_id", "patient does not exist"
	if strings.Contains(constraint, "doctor") {
		field, msg = "doctor_id", "doctor does not exist"
	}
	return apperrors.NewFieldValidationError([]apperrors.FieldError{{Field: field, Message: msg}})
}
