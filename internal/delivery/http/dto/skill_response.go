package dto

import (
	"time"

	"github.com/google/uuid"
)

type SkillResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
}

type UpsertEmployeeSkillRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Level    string `json:"level"`
}

type EmployeeSkillResponse struct {
	ID          uuid.UUID `json:"id"`
	SkillName   string    `json:"skill_name"`
	Category    string    `json:"category,omitempty"`
	Level       string    `json:"level"`
	LastUpdated time.Time `json:"last_updated"`
}
