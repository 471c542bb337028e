package gap

import (
	"time"

	"github.com/google/uuid"
)

type SkillDefinition struct {
	ID       uuid.UUID
	Name     string
	Category string
}

type AcquiredSkill struct {
	OwnerID     uuid.UUID
	Name        string
	Category    string
	Level       ProficiencyLevel
	LastUpdated time.Time
}

type Scope string

const (
	ScopeGlobal     Scope = "global"
	ScopeIndividual Scope = "individual"
)

type Target struct {
	ID               uuid.UUID
	Name             string
	Description      string
	RequiredSkillIDs []uuid.UUID
	TargetLevel      ProficiencyLevel
	TargetDate       *time.Time
	Scope            Scope
	OwnerID          uuid.UUID
}

// Analysis is recomputed per request from current snapshots and never
// persisted.
type Analysis struct {
	TargetID          uuid.UUID
	Scope             Scope
	TotalTargetSkills int
	AcquiredSkills    int
	ProgressPercent   int
	SkillGap          int
	IsCompleted       bool
}

// OrgImprovement is the population-level view for one target.
type OrgImprovement struct {
	EmployeesNeedingImprovement int
	EmployeesEvaluated          int
}
