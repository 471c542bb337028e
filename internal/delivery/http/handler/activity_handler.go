package handler

import (
	"strconv"

	"skill-gap/internal/delivery/http/dto"
	"skill-gap/internal/delivery/http/middleware"
	"skill-gap/internal/pkg/response"
	"skill-gap/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ActivityHandler struct {
	uc usecase.ActivityUsecase
}

func NewActivityHandler(uc usecase.ActivityUsecase) *ActivityHandler {
	return &ActivityHandler{uc: uc}
}

func (h *ActivityHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/employees/:employee_id/activity", h.GetRecentActivity)
}

func (h *ActivityHandler) GetRecentActivity(c fiber.Ctx) error {
	employeeID, err := uuid.Parse(c.Params("employee_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid employee id", nil, err)
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid limit", nil, err)
		}
	}

	events, err := h.uc.RecentActivity(c.Context(), employeeID, limit)
	if err != nil {
		return mapUsecaseError(err)
	}

	out := make([]dto.ActivityEventResponse, 0, len(events))
	for _, ev := range events {
		out = append(out, dto.ActivityEventResponse{
			ID:         ev.ID,
			OwnerID:    ev.OwnerID,
			Action:     ev.Action,
			Subject:    ev.Subject,
			OccurredAt: ev.OccurredAt,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
