package usecase

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"skill-gap/internal/repository"

	"github.com/google/uuid"
)

type mockEmployeeRepo struct {
	exists bool
	err    error
}

func (m mockEmployeeRepo) ExistsByID(context.Context, uuid.UUID) (bool, error) {
	return m.exists, m.err
}
func (m mockEmployeeRepo) ListEmployees(context.Context) ([]repository.Employee, error) {
	return nil, nil
}

type mockSkillRepo struct {
	items []repository.Skill
	err   error
}

func (m mockSkillRepo) ListSkills(context.Context) ([]repository.Skill, error) {
	return m.items, m.err
}

type mockEmployeeSkillRepo struct {
	byEmployee map[uuid.UUID][]repository.EmployeeSkill
	err        error
}

func (m mockEmployeeSkillRepo) FindByEmployeeID(_ context.Context, id uuid.UUID) ([]repository.EmployeeSkill, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.byEmployee[id], nil
}
func (m mockEmployeeSkillRepo) FindAllGrouped(context.Context) (map[uuid.UUID][]repository.EmployeeSkill, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.byEmployee, nil
}
func (m mockEmployeeSkillRepo) Upsert(_ context.Context, es repository.EmployeeSkill) (repository.EmployeeSkill, bool, error) {
	return es, true, m.err
}

type mockTargetRepo struct {
	global     []repository.Target
	individual []repository.Target
	globalErr  error
	indivErr   error
}

func (m mockTargetRepo) ListGlobal(context.Context) ([]repository.Target, error) {
	return m.global, m.globalErr
}
func (m mockTargetRepo) ListIndividual(context.Context, uuid.UUID) ([]repository.Target, error) {
	return m.individual, m.indivErr
}

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestEmployeeGapAnalysis_EmployeeNotFound(t *testing.T) {
	uc := NewGapAnalysisUsecase(mockEmployeeRepo{exists: false}, mockSkillRepo{}, mockEmployeeSkillRepo{}, mockTargetRepo{}, discardLogger())
	_, err := uc.EmployeeGapAnalysis(context.Background(), uuid.New())
	if !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestEmployeeGapAnalysis_NilEmployeeID(t *testing.T) {
	uc := NewGapAnalysisUsecase(mockEmployeeRepo{exists: true}, mockSkillRepo{}, mockEmployeeSkillRepo{}, mockTargetRepo{}, discardLogger())
	_, err := uc.EmployeeGapAnalysis(context.Background(), uuid.Nil)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestEmployeeGapAnalysis_Success(t *testing.T) {
	employeeID := uuid.New()
	pythonID := uuid.New()
	sqlID := uuid.New()
	dockerID := uuid.New()
	targetID := uuid.New()

	uc := NewGapAnalysisUsecase(
		mockEmployeeRepo{exists: true},
		mockSkillRepo{items: []repository.Skill{
			{ID: pythonID, Name: "Python"},
			{ID: sqlID, Name: "SQL"},
			{ID: dockerID, Name: "Docker"},
		}},
		mockEmployeeSkillRepo{byEmployee: map[uuid.UUID][]repository.EmployeeSkill{
			employeeID: {
				{EmployeeID: employeeID, SkillName: "python", Level: "expert"},
				{EmployeeID: employeeID, SkillName: "sql", Level: "beginner"},
			},
		}},
		mockTargetRepo{global: []repository.Target{{
			ID:               targetID,
			Name:             "Engineering Baseline",
			TargetLevel:      "intermediate",
			Scope:            "global",
			RequiredSkillIDs: []uuid.UUID{pythonID, sqlID, dockerID},
		}}},
		discardLogger(),
	)

	out, err := uc.EmployeeGapAnalysis(context.Background(), employeeID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 result, got %d", len(out))
	}
	got := out[0]
	if got.TargetID != targetID || got.Name != "Engineering Baseline" {
		t.Fatalf("target metadata not joined: %+v", got)
	}
	if got.TotalTargetSkills != 3 || got.AcquiredSkills != 1 || got.ProgressPercent != 33 || got.SkillGap != 2 {
		t.Fatalf("unexpected analysis: %+v", got)
	}
}

func TestEmployeeGapAnalysis_GlobalSourceDownDegrades(t *testing.T) {
	employeeID := uuid.New()
	goID := uuid.New()
	targetID := uuid.New()

	uc := NewGapAnalysisUsecase(
		mockEmployeeRepo{exists: true},
		mockSkillRepo{items: []repository.Skill{{ID: goID, Name: "Go"}}},
		mockEmployeeSkillRepo{byEmployee: map[uuid.UUID][]repository.EmployeeSkill{
			employeeID: {{EmployeeID: employeeID, SkillName: "Go", Level: "expert"}},
		}},
		mockTargetRepo{
			globalErr: errors.New("connection refused"),
			individual: []repository.Target{{
				ID:               targetID,
				Name:             "Personal Plan",
				TargetLevel:      "beginner",
				Scope:            "individual",
				OwnerID:          employeeID,
				RequiredSkillIDs: []uuid.UUID{goID},
			}},
		},
		discardLogger(),
	)

	out, err := uc.EmployeeGapAnalysis(context.Background(), employeeID)
	if err != nil {
		t.Fatalf("merge must degrade, not fail: %v", err)
	}
	if len(out) != 1 || out[0].TargetID != targetID {
		t.Fatalf("individual-target results must survive a global outage: %+v", out)
	}
	if !out[0].IsCompleted {
		t.Fatalf("expected completion for the individual target: %+v", out[0])
	}
}
