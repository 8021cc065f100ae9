package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/healthcare-service/internal/api/dto"
	"github.com/spec-kit/healthcare-service/internal/domain"
	"github.com/spec-kit/healthcare-service/internal/service"
)

// OwnedResourceHandler serves CRUD endpoints for one owned resource kind.
// C and U are the create and update payloads.
type OwnedResourceHandler[T any, P any, C any, U any] struct {
	service  *service.OwnershipPolicy[T, P]
	toRecord func(C) *T
	toPatch  func(U) P
	render   func(*T) any
}

// PatientsHandler serves /api/patients.
type PatientsHandler = OwnedResourceHandler[domain.Patient, domain.PatientPatch, dto.CreatePatientRequest, dto.UpdatePatientRequest]

// DoctorsHandler serves /api/doctors.
type DoctorsHandler = OwnedResourceHandler[domain.Doctor, domain.DoctorPatch, dto.CreateDoctorRequest, dto.UpdateDoctorRequest]

func NewPatientsHandler(svc *service.PatientService) *PatientsHandler {
	return &PatientsHandler{
		service:  svc,
		toRecord: dto.CreatePatientRequest.ToDomain,
		toPatch:  dto.UpdatePatientRequest.ToPatch,
		render:   func(p *domain.Patient) any { return dto.NewPatientResponse(p) },
	}
}

func NewDoctorsHandler(svc *service.DoctorService) *DoctorsHandler {
	return &DoctorsHandler{
		service:  svc,
		toRecord: dto.CreateDoctorRequest.ToDomain,
		toPatch:  dto.UpdateDoctorRequest.ToPatch,
		render:   func(d *domain.Doctor) any { return dto.NewDoctorResponse(d) },
	}
}

// Create POST /.
func (h *OwnedResourceHandler[T, P, C, U]) Create(c *fiber.Ctx) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}
	var req C
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	rec, err := h.service.Create(c.UserContext(), identity, h.toRecord(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": h.render(rec)})
}

// List GET /.
func (h *OwnedResourceHandler[T, P, C, U]) List(c *fiber.Ctx) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}
	records, err := h.service.List(c.UserContext(), identity)
	if err != nil {
		return err
	}
	items := make([]any, 0, len(records))
	for i := range records {
		items = append(items, h.render(&records[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get GET /:id.
func (h *OwnedResourceHandler[T, P, C, U]) Get(c *fiber.Ctx) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id", h.service.Kind())
	if err != nil {
		return err
	}
	rec, err := h.service.Get(c.UserContext(), identity, id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": h.render(rec)})
}

// Update PUT /:id.
func (h *OwnedResourceHandler[T, P, C, U]) Update(c *fiber.Ctx) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id", h.service.Kind())
	if err != nil {
		return err
	}
	var req U
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	rec, err := h.service.Update(c.UserContext(), identity, id, h.toPatch(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": h.render(rec)})
}

// Delete DELETE /:id.
func (h *OwnedResourceHandler[T, P, C, U]) Delete(c *fiber.Ctx) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id", h.service.Kind())
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), identity, id); err != nil {
		return err
	}
	return removed(c, h.service.Kind())
}
