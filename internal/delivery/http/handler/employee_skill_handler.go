package handler

import (
	"skill-gap/internal/delivery/http/dto"
	"skill-gap/internal/delivery/http/middleware"
	"skill-gap/internal/pkg/response"
	"skill-gap/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type EmployeeSkillHandler struct {
	uc usecase.EmployeeSkillUsecase
}

func NewEmployeeSkillHandler(uc usecase.EmployeeSkillUsecase) *EmployeeSkillHandler {
	return &EmployeeSkillHandler{uc: uc}
}

func (h *EmployeeSkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/employees/:employee_id/skills", h.ListSkills)
	r.Put("/employees/:employee_id/skills", h.UpsertSkill)
}

func (h *EmployeeSkillHandler) ListSkills(c fiber.Ctx) error {
	employeeID, err := uuid.Parse(c.Params("employee_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid employee id", nil, err)
	}

	items, err := h.uc.ListSkills(c.Context(), employeeID)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, toEmployeeSkillResponses(items))
}

func (h *EmployeeSkillHandler) UpsertSkill(c fiber.Ctx) error {
	employeeID, err := uuid.Parse(c.Params("employee_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid employee id", nil, err)
	}

	var req dto.UpsertEmployeeSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request body", nil, err)
	}

	item, err := h.uc.UpsertSkill(c.Context(), employeeID, usecase.UpsertSkillInput{
		Name:     req.Name,
		Category: req.Category,
		Level:    req.Level,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.EmployeeSkillResponse{
		ID:          item.ID,
		SkillName:   item.SkillName,
		Category:    item.Category,
		Level:       string(item.Level),
		LastUpdated: item.LastUpdated,
	})
}

func toEmployeeSkillResponses(items []usecase.EmployeeSkillItem) []dto.EmployeeSkillResponse {
	out := make([]dto.EmployeeSkillResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.EmployeeSkillResponse{
			ID:          it.ID,
			SkillName:   it.SkillName,
			Category:    it.Category,
			Level:       string(it.Level),
			LastUpdated: it.LastUpdated,
		})
	}
	return out
}
