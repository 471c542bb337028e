package handler

import (
	"skill-gap/internal/delivery/http/dto"
	"skill-gap/internal/pkg/response"
	"skill-gap/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SkillHandler struct {
	uc usecase.SkillCatalogUsecase
}

func NewSkillHandler(uc usecase.SkillCatalogUsecase) *SkillHandler {
	return &SkillHandler{uc: uc}
}

func (h *SkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/skills", h.ListSkills)
}

func (h *SkillHandler) ListSkills(c fiber.Ctx) error {
	items, err := h.uc.ListSkills(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	out := make([]dto.SkillResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.SkillResponse{ID: it.ID, Name: it.Name, Category: it.Category})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
