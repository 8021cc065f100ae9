package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/healthcare-service/internal/api/dto"
	"github.com/spec-kit/healthcare-service/internal/service"
)

// MappingsHandler serves /api/mappings.
type MappingsHandler struct {
	service *service.MappingService
}

func NewMappingsHandler(mappingService *service.MappingService) *MappingsHandler {
	return &MappingsHandler{service: mappingService}
}

// Create POST /api/mappings.
func (h *MappingsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateMappingRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	m, err := h.service.Link(c.UserContext(), *req.PatientID, *req.DoctorID)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewMappingResponse(m)})
}

// List GET /api/mappings.
func (h *MappingsHandler) List(c *fiber.Ctx) error {
	summaries, err := h.service.ListAll(c.UserContext())
	if err != nil {
		return err
	}
	items := make([]dto.MappingSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		items = append(items, dto.NewMappingSummaryResponse(s))
	}
	return c.JSON(fiber.Map{"data": items})
}

// DoctorsForPatient GET /api/mappings/:patient_id.
func (h *MappingsHandler) DoctorsForPatient(c *fiber.Ctx) error {
	patientID, err := pathID(c, "patient_id", "patient")
	if err != nil {
		return err
	}
	doctors, err := h.service.DoctorsForPatient(c.UserContext(), patientID)
	if err != nil {
		return err
	}
	items := make([]dto.LinkedDoctorResponse, 0, len(doctors))
	for _, d := range doctors {
		items = append(items, dto.NewLinkedDoctorResponse(d))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Delete DELETE /api/mappings/:id.
func (h *MappingsHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c, "id", "mapping")
	if err != nil {
		return err
	}
	if err := h.service.Unlink(c.UserContext(), id); err != nil {
		return err
	}
	return removed(c, "mapping")
}
