package usecase

import (
	"context"
	"log"
	"time"

	"skill-gap/internal/domain/gap"
	"skill-gap/internal/infrastructure/cache"
	"skill-gap/internal/repository"

	"github.com/google/uuid"
)

// TargetImprovement is the population-wide view for one global target,
// joinable by TargetID with the per-employee results for display.
type TargetImprovement struct {
	TargetID                    uuid.UUID `json:"target_id"`
	Name                        string    `json:"name"`
	EmployeesNeedingImprovement int       `json:"employees_needing_improvement"`
	EmployeesEvaluated          int       `json:"employees_evaluated"`
}

type OrgGapUsecase interface {
	OrgGapAnalysis(ctx context.Context) ([]TargetImprovement, error)
	Refresh(ctx context.Context) ([]TargetImprovement, error)
}

type OrgGap struct {
	skills         repository.SkillRepository
	employeeSkills repository.EmployeeSkillRepository
	targets        repository.TargetRepository
	cache          *cache.Redis
	workers        int
	cacheTTL       time.Duration
	logger         *log.Logger
}

func NewOrgGapUsecase(
	skills repository.SkillRepository,
	employeeSkills repository.EmployeeSkillRepository,
	targets repository.TargetRepository,
	c *cache.Redis,
	workers int,
	cacheTTL time.Duration,
	logger *log.Logger,
) *OrgGap {
	if workers <= 0 {
		workers = 4
	}
	if logger == nil {
		logger = log.Default()
	}
	return &OrgGap{
		skills:         skills,
		employeeSkills: employeeSkills,
		targets:        targets,
		cache:          c,
		workers:        workers,
		cacheTTL:       cacheTTL,
		logger:         logger,
	}
}

func (u *OrgGap) OrgGapAnalysis(ctx context.Context) ([]TargetImprovement, error) {
	var cached []TargetImprovement
	if hit, err := u.cache.GetJSON(ctx, cache.OrgGapKey, &cached); err == nil && hit {
		return cached, nil
	}
	return u.Refresh(ctx)
}

// Refresh recomputes the aggregation from current snapshots and primes
// the cache. The cron scheduler calls this directly.
func (u *OrgGap) Refresh(ctx context.Context) ([]TargetImprovement, error) {
	skillRows, err := u.skills.ListSkills(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	catalog := toCatalog(skillRows)

	targetRows, err := u.targets.ListGlobal(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	targets := toTargets(targetRows, u.logger)

	grouped, err := u.employeeSkills.FindAllGrouped(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	population := make(map[uuid.UUID][]gap.AcquiredSkill, len(grouped))
	for employeeID, rows := range grouped {
		population[employeeID] = toAcquired(rows, u.logger)
	}

	started := time.Now()
	counts, err := gap.Aggregate(ctx, targets, population, catalog, u.workers)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, ErrInternal
	}
	u.logger.Printf("[OrgGap] aggregation complete | targets=%d employees=%d workers=%d took=%s",
		len(targets), len(population), u.workers, time.Since(started))

	out := make([]TargetImprovement, 0, len(targets))
	for _, t := range targets {
		c, ok := counts[t.ID]
		if !ok {
			continue
		}
		out = append(out, TargetImprovement{
			TargetID:                    t.ID,
			Name:                        t.Name,
			EmployeesNeedingImprovement: c.EmployeesNeedingImprovement,
			EmployeesEvaluated:          c.EmployeesEvaluated,
		})
	}

	if err := u.cache.SetJSON(ctx, cache.OrgGapKey, out, u.cacheTTL); err != nil {
		u.logger.Printf("[OrgGap] cache write failed | err=%v", err)
	}
	return out, nil
}
