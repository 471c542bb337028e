package usecase

import (
	"context"
	"errors"
	"testing"

	"skill-gap/internal/domain/gap"
	"skill-gap/internal/repository"

	"github.com/google/uuid"
)

type upsertingSkillRepo struct {
	created bool
	saved   repository.EmployeeSkill
}

func (m *upsertingSkillRepo) FindByEmployeeID(context.Context, uuid.UUID) ([]repository.EmployeeSkill, error) {
	return nil, nil
}
func (m *upsertingSkillRepo) FindAllGrouped(context.Context) (map[uuid.UUID][]repository.EmployeeSkill, error) {
	return nil, nil
}
func (m *upsertingSkillRepo) Upsert(_ context.Context, es repository.EmployeeSkill) (repository.EmployeeSkill, bool, error) {
	es.ID = uuid.New()
	m.saved = es
	return es, m.created, nil
}

func TestUpsertSkill_NewSkillRecordsAddedEvent(t *testing.T) {
	repo := &upsertingSkillRepo{created: true}
	events := &mockActivityRepo{}
	uc := NewEmployeeSkillUsecase(mockEmployeeRepo{exists: true}, repo, events, nil, discardLogger())

	employeeID := uuid.New()
	item, err := uc.UpsertSkill(context.Background(), employeeID, UpsertSkillInput{
		Name:  "  Terraform ",
		Level: "Intermediate",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if item.SkillName != "Terraform" {
		t.Fatalf("expected trimmed name, got %q", item.SkillName)
	}
	if item.Level != gap.LevelIntermediate {
		t.Fatalf("expected normalized level, got %q", item.Level)
	}
	if len(events.recorded) != 1 {
		t.Fatalf("expected 1 activity event, got %d", len(events.recorded))
	}
	ev := events.recorded[0]
	if ev.Action != "skill_added" || ev.Subject != "Terraform" || ev.OwnerID != employeeID {
		t.Fatalf("unexpected activity event: %+v", ev)
	}
}

func TestUpsertSkill_ExistingSkillRecordsUpdatedEvent(t *testing.T) {
	events := &mockActivityRepo{}
	uc := NewEmployeeSkillUsecase(mockEmployeeRepo{exists: true}, &upsertingSkillRepo{created: false}, events, nil, discardLogger())

	if _, err := uc.UpsertSkill(context.Background(), uuid.New(), UpsertSkillInput{Name: "Go", Level: "expert"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(events.recorded) != 1 || events.recorded[0].Action != "skill_updated" {
		t.Fatalf("expected skill_updated event, got %+v", events.recorded)
	}
}

func TestUpsertSkill_RejectsBadInput(t *testing.T) {
	uc := NewEmployeeSkillUsecase(mockEmployeeRepo{exists: true}, &upsertingSkillRepo{}, &mockActivityRepo{}, nil, discardLogger())

	if _, err := uc.UpsertSkill(context.Background(), uuid.New(), UpsertSkillInput{Name: "   ", Level: "expert"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank name, got %v", err)
	}
	if _, err := uc.UpsertSkill(context.Background(), uuid.New(), UpsertSkillInput{Name: "Go", Level: "guru"}); !errors.Is(err, ErrInvalidProficiencyLevel) {
		t.Fatalf("expected ErrInvalidProficiencyLevel, got %v", err)
	}
}
