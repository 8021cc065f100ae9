package dto

import (
	"time"

	"github.com/spec-kit/healthcare-service/internal/domain"
)

// CreatePatientRequest payload.
type CreatePatientRequest struct {
	Name    string  `json:"name" validate:"required"`
	Age     *int    `json:"age" validate:"required,gte=0,lte=150"`
	Gender  *string `json:"gender"`
	Contact *string `json:"contact"`
	Address *string `json:"address"`
}

// UpdatePatientRequest payload; omitted fields are left unchanged.
type UpdatePatientRequest struct {
	Name    *string `json:"name" validate:"omitnil,min=1"`
	Age     *int    `json:"age" validate:"omitnil,gte=0,lte=150"`
	Gender  *string `json:"gender"`
	Contact *string `json:"contact"`
	Address *string `json:"address"`
}

// PatientResponse representation.
type PatientResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	Gender    *string   `json:"gender"`
	Contact   *string   `json:"contact"`
	Address   *string   `json:"address"`
	CreatedBy int64     `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

func (r CreatePatientRequest) ToDomain() *domain.Patient {
	p := &domain.Patient{
		Name:    r.Name,
		Gender:  r.Gender,
		Contact: r.Contact,
		Address: r.Address,
	}
	if r.Age != nil {
		p.Age = *r.Age
	}
	return p
}

func (r UpdatePatientRequest) ToPatch() domain.PatientPatch {
	return domain.PatientPatch{
		Name:    r.Name,
		Age:     r.Age,
		Gender:  r.Gender,
		Contact: r.Contact,
		Address: r.Address,
	}
}

func NewPatientResponse(p *domain.Patient) PatientResponse {
	return PatientResponse{
		ID:        p.ID,
		Name:      p.Name,
		Age:       p.Age,
		Gender:    p.Gender,
		Contact:   p.Contact,
		Address:   p.Address,
		CreatedBy: p.OwnerID,
		CreatedAt: p.CreatedAt,
	}
}
