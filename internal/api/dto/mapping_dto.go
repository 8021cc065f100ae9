package dto

import (
	"time"

	"github.com/spec-kit/healthcare-service/internal/domain"
)

// CreateMappingRequest links a doctor to a patient.
type CreateMappingRequest struct {
	PatientID *int64 `json:"patient_id" validate:"required,gt=0"`
	DoctorID  *int64 `json:"doctor_id" validate:"required,gt=0"`
}

type MappingResponse struct {
	ID        int64     `json:"id"`
	PatientID int64     `json:"patient_id"`
	DoctorID  int64     `json:"doctor_id"`
	CreatedAt time.Time `json:"created_at"`
}

// MappingSummaryResponse names both sides of a mapping.
type MappingSummaryResponse struct {
	ID          int64     `json:"id"`
	PatientName string    `json:"patient_name"`
	DoctorName  string    `json:"doctor_name"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewMappingResponse(m *domain.Mapping) MappingResponse {
	return MappingResponse{ID: m.ID, PatientID: m.PatientID, DoctorID: m.DoctorID, CreatedAt: m.CreatedAt}
}

func NewMappingSummaryResponse(s domain.MappingSummary) MappingSummaryResponse {
	return MappingSummaryResponse{ID: s.ID, PatientName: s.PatientName, DoctorName: s.DoctorName, CreatedAt: s.CreatedAt}
}
