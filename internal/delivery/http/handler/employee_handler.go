package handler

import (
	"skill-gap/internal/delivery/http/dto"
	"skill-gap/internal/pkg/response"
	"skill-gap/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type EmployeeHandler struct {
	uc usecase.EmployeeUsecase
}

func NewEmployeeHandler(uc usecase.EmployeeUsecase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

func (h *EmployeeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/employees", h.ListEmployees)
}

func (h *EmployeeHandler) ListEmployees(c fiber.Ctx) error {
	items, err := h.uc.ListEmployees(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	out := make([]dto.EmployeeResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.EmployeeResponse{ID: it.ID, FullName: it.FullName, Position: it.Position})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
