package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"skill-gap/internal/domain/gap"
	"skill-gap/internal/infrastructure/cache"
	"skill-gap/internal/repository"
	"skill-gap/internal/ws"

	"github.com/google/uuid"
)

type UpsertSkillInput struct {
	Name     string
	Category string
	Level    string
}

type EmployeeSkillItem struct {
	ID          uuid.UUID
	SkillName   string
	Category    string
	Level       gap.ProficiencyLevel
	LastUpdated time.Time
}

type EmployeeSkillUsecase interface {
	ListSkills(ctx context.Context, employeeID uuid.UUID) ([]EmployeeSkillItem, error)
	UpsertSkill(ctx context.Context, employeeID uuid.UUID, in UpsertSkillInput) (EmployeeSkillItem, error)
}

type EmployeeSkill struct {
	employees repository.EmployeeRepository
	repo      repository.EmployeeSkillRepository
	events    repository.ActivityRepository
	cache     *cache.Redis
	logger    *log.Logger
}

func NewEmployeeSkillUsecase(
	employees repository.EmployeeRepository,
	repo repository.EmployeeSkillRepository,
	events repository.ActivityRepository,
	c *cache.Redis,
	logger *log.Logger,
) *EmployeeSkill {
	if logger == nil {
		logger = log.Default()
	}
	return &EmployeeSkill{employees: employees, repo: repo, events: events, cache: c, logger: logger}
}

func (u *EmployeeSkill) ListSkills(ctx context.Context, employeeID uuid.UUID) ([]EmployeeSkillItem, error) {
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

	rows, err := u.repo.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, ErrInternal
	}
	out := make([]EmployeeSkillItem, 0, len(rows))
	for _, row := range rows {
		out = append(out, EmployeeSkillItem{
			ID:          row.ID,
			SkillName:   row.SkillName,
			Category:    row.Category,
			Level:       gap.ProficiencyLevel(strings.ToLower(strings.TrimSpace(row.Level))),
			LastUpdated: row.LastUpdated,
		})
	}
	return out, nil
}

func (u *EmployeeSkill) UpsertSkill(ctx context.Context, employeeID uuid.UUID, in UpsertSkillInput) (EmployeeSkillItem, error) {
	if employeeID == uuid.Nil {
		return EmployeeSkillItem{}, ErrInvalidInput
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return EmployeeSkillItem{}, ErrInvalidInput
	}
	level, ok := gap.ParseLevel(in.Level)
	if !ok {
		return EmployeeSkillItem{}, ErrInvalidProficiencyLevel
	}

	exists, err := u.employees.ExistsByID(ctx, employeeID)
	if err != nil {
		return EmployeeSkillItem{}, ErrInternal
	}
	if !exists {
		return EmployeeSkillItem{}, ErrEmployeeNotFound
	}

	saved, created, err := u.repo.Upsert(ctx, repository.EmployeeSkill{
		EmployeeID: employeeID,
		SkillName:  name,
		Category:   strings.TrimSpace(in.Category),
		Level:      string(level),
	})
	if err != nil {
		return EmployeeSkillItem{}, ErrInternal
	}

	action := "skill_updated"
	if created {
		action = "skill_added"
	}
	ev := repository.ActivityEvent{
		OwnerID:    employeeID,
		Action:     action,
		Subject:    name,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := u.events.Record(ctx, ev); err != nil {
		u.logger.Printf("[EmployeeSkill] activity record failed | employee=%s skill=%q err=%v", employeeID, name, err)
	}

	if err := u.cache.InvalidateGapAnalysis(ctx); err != nil {
		u.logger.Printf("[EmployeeSkill] cache invalidation failed | err=%v", err)
	}
	ws.NotifyGapRefresh(employeeID)

	return EmployeeSkillItem{
		ID:          saved.ID,
		SkillName:   saved.SkillName,
		Category:    saved.Category,
		Level:       level,
		LastUpdated: saved.LastUpdated,
	}, nil
}
