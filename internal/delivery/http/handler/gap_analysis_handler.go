package handler

import (
	"errors"

	"skill-gap/internal/delivery/http/dto"
	"skill-gap/internal/delivery/http/middleware"
	"skill-gap/internal/pkg/response"
	"skill-gap/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type GapAnalysisHandler struct {
	employee usecase.GapAnalysisUsecase
	org      usecase.OrgGapUsecase
}

func NewGapAnalysisHandler(employee usecase.GapAnalysisUsecase, org usecase.OrgGapUsecase) *GapAnalysisHandler {
	return &GapAnalysisHandler{employee: employee, org: org}
}

func (h *GapAnalysisHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/employees/:employee_id/gap-analysis", h.GetEmployeeGapAnalysis)
	r.Get("/gap-analysis/organization", h.GetOrgGapAnalysis)
}

func (h *GapAnalysisHandler) GetEmployeeGapAnalysis(c fiber.Ctx) error {
	employeeID, err := uuid.Parse(c.Params("employee_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid employee id", nil, err)
	}

	items, err := h.employee.EmployeeGapAnalysis(c.Context(), employeeID)
	if err != nil {
		return mapUsecaseError(err)
	}

	out := make([]dto.TargetProgressResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.TargetProgressResponse{
			TargetID:          it.TargetID,
			Name:              it.Name,
			Description:       it.Description,
			TargetLevel:       string(it.TargetLevel),
			TargetDate:        it.TargetDate,
			Scope:             string(it.Scope),
			TotalTargetSkills: it.TotalTargetSkills,
			AcquiredSkills:    it.AcquiredSkills,
			ProgressPercent:   it.ProgressPercent,
			SkillGap:          it.SkillGap,
			IsCompleted:       it.IsCompleted,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *GapAnalysisHandler) GetOrgGapAnalysis(c fiber.Ctx) error {
	items, err := h.org.OrgGapAnalysis(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	out := make([]dto.TargetImprovementResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.TargetImprovementResponse{
			TargetID:                    it.TargetID,
			Name:                        it.Name,
			EmployeesNeedingImprovement: it.EmployeesNeedingImprovement,
			EmployeesEvaluated:          it.EmployeesEvaluated,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrEmployeeNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Employee not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidProficiencyLevel):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Invalid proficiency level", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
