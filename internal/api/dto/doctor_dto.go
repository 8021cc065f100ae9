package dto

import (
	"time"

	"github.com/spec-kit/healthcare-service/internal/domain"
)

// CreateDoctorRequest payload.
type CreateDoctorRequest struct {
	Name           string  `json:"name" validate:"required"`
	Specialization string  `json:"specialization" validate:"required"`
	Contact        *string `json:"contact"`
	Email          *string `json:"email" validate:"omitnil,email"`
}

// UpdateDoctorRequest payload; omitted fields are left unchanged.
type UpdateDoctorRequest struct {
	Name           *string `json:"name" validate:"omitnil,min=1"`
	Specialization *string `json:"specialization" validate:"omitnil,min=1"`
	Contact        *string `json:"contact"`
	Email          *string `json:"email" validate:"omitnil,email"`
}

// DoctorResponse representation.
type DoctorResponse struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Specialization string    `json:"specialization"`
	Contact        *string   `json:"contact"`
	Email          *string   `json:"email"`
	CreatedBy      int64     `json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
}

// LinkedDoctorResponse is a doctor as listed under a patient's mappings.
type LinkedDoctorResponse struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Specialization string  `json:"specialization"`
	Contact        *string `json:"contact"`
	Email          *string `json:"email"`
}

func (r CreateDoctorRequest) ToDomain() *domain.Doctor {
	return &domain.Doctor{
		Name:           r.Name,
		Specialization: r.Specialization,
		Contact:        r.Contact,
		Email:          r.Email,
	}
}

func (r UpdateDoctorRequest) ToPatch() domain.DoctorPatch {
	return domain.DoctorPatch{
		Name:           r.Name,
		Specialization: r.Specialization,
		Contact:        r.Contact,
		Email:          r.Email,
	}
}

func NewDoctorResponse(d *domain.Doctor) DoctorResponse {
	return DoctorResponse{
		ID:             d.ID,
		Name:           d.Name,
		Specialization: d.Specialization,
		Contact:        d.Contact,
		Email:          d.Email,
		CreatedBy:      d.OwnerID,
		CreatedAt:      d.CreatedAt,
	}
}

func NewLinkedDoctorResponse(d domain.Doctor) LinkedDoctorResponse {
	return LinkedDoctorResponse{
		ID:             d.ID,
		Name:           d.Name,
		Specialization: d.Specialization,
		Contact:        d.Contact,
		Email:          d.Email,
	}
}
