package dto

import (
	"time"

	"github.com/google/uuid"
)

type TargetProgressResponse struct {
	TargetID          uuid.UUID  `json:"target_id"`
	Name              string     `json:"name"`
	Description       string     `json:"description,omitempty"`
	TargetLevel       string     `json:"target_level,omitempty"`
	TargetDate        *time.Time `json:"target_date,omitempty"`
	Scope             string     `json:"scope"`
	TotalTargetSkills int        `json:"total_target_skills"`
	AcquiredSkills    int        `json:"acquired_skills"`
	ProgressPercent   int        `json:"progress_percent"`
	SkillGap          int        `json:"skill_gap"`
	IsCompleted       bool       `json:"is_completed"`
}

type TargetImprovementResponse struct {
	TargetID                    uuid.UUID `json:"target_id"`
	Name                        string    `json:"name"`
	EmployeesNeedingImprovement int       `json:"employees_needing_improvement"`
	EmployeesEvaluated          int       `json:"employees_evaluated"`
}
