package v1

import (
	"skill-gap/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Skills         *handler.SkillHandler
	Employees      *handler.EmployeeHandler
	EmployeeSkills *handler.EmployeeSkillHandler
	GapAnalysis    *handler.GapAnalysisHandler
	Activity       *handler.ActivityHandler
}

func Register(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	if h.Skills != nil {
		h.Skills.RegisterRoutes(r)
	}
	if h.Employees != nil {
		h.Employees.RegisterRoutes(r)
	}
	if h.EmployeeSkills != nil {
		h.EmployeeSkills.RegisterRoutes(r)
	}
	if h.GapAnalysis != nil {
		h.GapAnalysis.RegisterRoutes(r)
	}
	if h.Activity != nil {
		h.Activity.RegisterRoutes(r)
	}
}
