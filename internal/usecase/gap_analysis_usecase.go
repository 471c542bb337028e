package usecase

import (
	"context"
	"log"
	"time"

	"skill-gap/internal/domain/gap"
	"skill-gap/internal/repository"

	"github.com/google/uuid"
)

// TargetProgress is one target's gap view for an employee, joined with
// the target's display metadata.
type TargetProgress struct {
	TargetID    uuid.UUID
	Name        string
	Description string
	TargetLevel gap.ProficiencyLevel
	TargetDate  *time.Time
	Scope       gap.Scope

	TotalTargetSkills int
	AcquiredSkills    int
	ProgressPercent   int
	SkillGap          int
	IsCompleted       bool
}

type GapAnalysisUsecase interface {
	EmployeeGapAnalysis(ctx context.Context, employeeID uuid.UUID) ([]TargetProgress, error)
}

type GapAnalysis struct {
	employees      repository.EmployeeRepository
	skills         repository.SkillRepository
	employeeSkills repository.EmployeeSkillRepository
	targets        repository.TargetRepository
	logger         *log.Logger
}

func NewGapAnalysisUsecase(
	employees repository.EmployeeRepository,
	skills repository.SkillRepository,
	employeeSkills repository.EmployeeSkillRepository,
	targets repository.TargetRepository,
	logger *log.Logger,
) *GapAnalysis {
	if logger == nil {
		logger = log.Default()
	}
	return &GapAnalysis{
		employees:      employees,
		skills:         skills,
		employeeSkills: employeeSkills,
		targets:        targets,
		logger:         logger,
	}
}

func (u *GapAnalysis) EmployeeGapAnalysis(ctx context.Context, employeeID uuid.UUID) ([]TargetProgress, error) {
	if employeeID == uuid.Nil {
		return nil, ErrInvalidInput
	}

	exists, err := u.employees.ExistsByID(ctx, employeeID)
	if err != nil {
		return nil, ErrInternal
	}
	if !exists {
		return nil, ErrEmployeeNotFound
	}

	skillRows, err := u.skills.ListSkills(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	catalog := toCatalog(skillRows)

	acquiredRows, err := u.employeeSkills.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, ErrInternal
	}
	acquired := toAcquired(acquiredRows, u.logger)

	// A broken global-target source degrades to individual targets only;
	// the employee still gets their own plan back.
	globalRows, err := u.targets.ListGlobal(ctx)
	if err != nil {
		u.logger.Printf("[GapAnalysis] global target source unavailable, serving individual targets only | employee=%s err=%v", employeeID, err)
		globalRows = nil
	}
	individualRows, err := u.targets.ListIndividual(ctx, employeeID)
	if err != nil {
		return nil, ErrInternal
	}

	globalTargets := toTargets(globalRows, u.logger)
	individualTargets := toTargets(individualRows, u.logger)

	analyses, err := gap.Merge(globalTargets, individualTargets, acquired, catalog)
	if err != nil {
		return nil, ErrInternal
	}

	meta := make(map[uuid.UUID]gap.Target, len(globalTargets)+len(individualTargets))
	for _, t := range individualTargets {
		meta[t.ID] = t
	}
	for _, t := range globalTargets {
		meta[t.ID] = t
	}

	out := make([]TargetProgress, 0, len(analyses))
	for _, a := range analyses {
		t := meta[a.TargetID]
		out = append(out, TargetProgress{
			TargetID:          a.TargetID,
			Name:              t.Name,
			Description:       t.Description,
			TargetLevel:       t.TargetLevel,
			TargetDate:        t.TargetDate,
			Scope:             a.Scope,
			TotalTargetSkills: a.TotalTargetSkills,
			AcquiredSkills:    a.AcquiredSkills,
			ProgressPercent:   a.ProgressPercent,
			SkillGap:          a.SkillGap,
			IsCompleted:       a.IsCompleted,
		})
	}
	return out, nil
}
