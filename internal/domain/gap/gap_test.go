package gap

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func testCatalog() (*Catalog, [3]uuid.UUID) {
	ids := [3]uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	c := NewCatalog([]SkillDefinition{
		{ID: ids[0], Name: "Python", Category: "Programming Language"},
		{ID: ids[1], Name: "SQL", Category: "Database"},
		{ID: ids[2], Name: "Docker", Category: "DevOps"},
	})
	return c, ids
}

func TestOrdinalMonotonicity(t *testing.T) {
	b, ok := LevelBeginner.Ordinal()
	if !ok {
		t.Fatalf("beginner has no ordinal")
	}
	i, ok := LevelIntermediate.Ordinal()
	if !ok {
		t.Fatalf("intermediate has no ordinal")
	}
	e, ok := LevelExpert.Ordinal()
	if !ok {
		t.Fatalf("expert has no ordinal")
	}
	if !(b < i && i < e) {
		t.Fatalf("ordinals not monotonic: %d %d %d", b, i, e)
	}
}

func TestOrdinalUnknownLevel(t *testing.T) {
	if _, ok := ProficiencyLevel("ninja").Ordinal(); ok {
		t.Fatalf("unknown level must have no ordinal")
	}
	if _, ok := LevelUnset.Ordinal(); ok {
		t.Fatalf("unset level must have no ordinal")
	}
}

func TestParseLevel(t *testing.T) {
	l, ok := ParseLevel("  Expert ")
	if !ok || l != LevelExpert {
		t.Fatalf("expected expert, got %q ok=%v", l, ok)
	}
	if _, ok := ParseLevel("guru"); ok {
		t.Fatalf("expected parse failure")
	}
}

func TestResolveNilCatalog(t *testing.T) {
	if _, err := Resolve(nil, nil, LevelUnset, nil); err != ErrNilCatalog {
		t.Fatalf("expected ErrNilCatalog, got %v", err)
	}
}

func TestResolveCaseInsensitiveMatch(t *testing.T) {
	id := uuid.New()
	catalog := NewCatalog([]SkillDefinition{{ID: id, Name: "React.js"}})
	owner := uuid.New()

	satisfied, err := Resolve(
		[]AcquiredSkill{{OwnerID: owner, Name: "react.js", Level: LevelBeginner}},
		[]uuid.UUID{id},
		LevelBeginner,
		catalog,
	)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, ok := satisfied[id]; !ok {
		t.Fatalf("expected case-insensitive name match to satisfy")
	}
}

func TestResolveUnsetTargetLevel(t *testing.T) {
	id := uuid.New()
	catalog := NewCatalog([]SkillDefinition{{ID: id, Name: "Go"}})

	satisfied, err := Resolve(
		[]AcquiredSkill{{Name: "go", Level: ProficiencyLevel("unrated")}},
		[]uuid.UUID{id},
		LevelUnset,
		catalog,
	)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(satisfied) != 1 {
		t.Fatalf("name match alone must satisfy an unset target level")
	}
}

func TestResolveUnknownLevelsNeverSatisfy(t *testing.T) {
	id := uuid.New()
	catalog := NewCatalog([]SkillDefinition{{ID: id, Name: "Go"}})

	// Unknown acquired level against a real requirement.
	satisfied, err := Resolve(
		[]AcquiredSkill{{Name: "Go", Level: ProficiencyLevel("wizard")}},
		[]uuid.UUID{id},
		LevelBeginner,
		catalog,
	)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(satisfied) != 0 {
		t.Fatalf("unknown acquired level must not satisfy a level requirement")
	}

	// Unknown target level against a real acquired level.
	satisfied, err = Resolve(
		[]AcquiredSkill{{Name: "Go", Level: LevelExpert}},
		[]uuid.UUID{id},
		ProficiencyLevel("legendary"),
		catalog,
	)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(satisfied) != 0 {
		t.Fatalf("unknown target level must satisfy nothing")
	}
}

func TestResolveDuplicateAcquiredRows(t *testing.T) {
	id := uuid.New()
	catalog := NewCatalog([]SkillDefinition{{ID: id, Name: "Go"}})

	// Two rows for the same skill; the stronger one must win.
	satisfied, err := Resolve(
		[]AcquiredSkill{
			{Name: "go", Level: LevelBeginner},
			{Name: "Go", Level: LevelExpert},
		},
		[]uuid.UUID{id},
		LevelIntermediate,
		catalog,
	)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(satisfied) != 1 {
		t.Fatalf("a match on any duplicate row must suffice")
	}
}

func TestEvaluatePartialProgress(t *testing.T) {
	catalog, ids := testCatalog()
	target := Target{
		ID:               uuid.New(),
		RequiredSkillIDs: []uuid.UUID{ids[0], ids[1], ids[2]},
		TargetLevel:      LevelIntermediate,
		Scope:            ScopeGlobal,
	}
	acquired := []AcquiredSkill{
		{Name: "python", Level: LevelExpert},
		{Name: "sql", Level: LevelBeginner},
	}

	a, err := Evaluate(target, acquired, catalog)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if a.TotalTargetSkills != 3 {
		t.Fatalf("expected total 3, got %d", a.TotalTargetSkills)
	}
	if a.AcquiredSkills != 1 {
		t.Fatalf("expected acquired 1, got %d", a.AcquiredSkills)
	}
	if a.ProgressPercent != 33 {
		t.Fatalf("expected 33%%, got %d", a.ProgressPercent)
	}
	if a.SkillGap != 2 {
		t.Fatalf("expected gap 2, got %d", a.SkillGap)
	}
	if a.IsCompleted {
		t.Fatalf("expected not completed")
	}
}

func TestComputeRounding(t *testing.T) {
	catalog, ids := testCatalog()
	required := []uuid.UUID{ids[0], ids[1], ids[2]}

	a, err := Compute(required, map[uuid.UUID]struct{}{ids[0]: {}, ids[1]: {}}, catalog)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if a.ProgressPercent != 67 {
		t.Fatalf("2/3 must round to 67, got %d", a.ProgressPercent)
	}
}

func TestComputeZeroTotal(t *testing.T) {
	catalog, _ := testCatalog()

	a, err := Compute(nil, nil, catalog)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if a.ProgressPercent != 0 || a.SkillGap != 0 || a.IsCompleted {
		t.Fatalf("zero-total target must yield 0%% and no completion, got %+v", a)
	}
}

func TestComputeDanglingIDExclusion(t *testing.T) {
	catalog, ids := testCatalog()
	dangling := uuid.New()
	required := []uuid.UUID{ids[0], dangling}

	a, err := Compute(required, map[uuid.UUID]struct{}{ids[0]: {}}, catalog)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if a.TotalTargetSkills != 1 {
		t.Fatalf("dangling id must be excluded from the total, got %d", a.TotalTargetSkills)
	}
	if !a.IsCompleted || a.ProgressPercent != 100 || a.SkillGap != 0 {
		t.Fatalf("expected completion, got %+v", a)
	}
}

func TestComputeInvariants(t *testing.T) {
	catalog, ids := testCatalog()
	required := []uuid.UUID{ids[0], ids[1], ids[2]}

	sets := []map[uuid.UUID]struct{}{
		{},
		{ids[0]: {}},
		{ids[0]: {}, ids[1]: {}},
		{ids[0]: {}, ids[1]: {}, ids[2]: {}},
	}
	for _, satisfied := range sets {
		a, err := Compute(required, satisfied, catalog)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if a.SkillGap < 0 {
			t.Fatalf("gap must be non-negative: %+v", a)
		}
		if a.AcquiredSkills > a.TotalTargetSkills {
			t.Fatalf("acquired exceeds total: %+v", a)
		}
		if a.SkillGap != a.TotalTargetSkills-a.AcquiredSkills {
			t.Fatalf("gap identity broken: %+v", a)
		}
		if a.IsCompleted != (a.SkillGap == 0) || a.IsCompleted != (a.ProgressPercent == 100) {
			t.Fatalf("completion equivalence broken: %+v", a)
		}
	}
}

func TestMergeDeduplicatesByTargetID(t *testing.T) {
	catalog, ids := testCatalog()
	shared := uuid.New()

	global := []Target{{
		ID:               shared,
		RequiredSkillIDs: []uuid.UUID{ids[0]},
		TargetLevel:      LevelBeginner,
		Scope:            ScopeGlobal,
	}}
	individual := []Target{{
		ID:               shared,
		RequiredSkillIDs: []uuid.UUID{ids[0], ids[1]},
		TargetLevel:      LevelExpert,
		Scope:            ScopeIndividual,
	}}

	out, err := Merge(global, individual, []AcquiredSkill{{Name: "python", Level: LevelBeginner}}, catalog)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected exactly one result for the shared id, got %d", len(out))
	}
	if out[0].Scope != ScopeGlobal {
		t.Fatalf("global-scope result must win the collision")
	}
	if !out[0].IsCompleted {
		t.Fatalf("expected the global target's result, got %+v", out[0])
	}
}

func TestMergeNilCatalog(t *testing.T) {
	if _, err := Merge(nil, nil, nil, nil); err != ErrNilCatalog {
		t.Fatalf("expected ErrNilCatalog, got %v", err)
	}
}

func TestAggregateAllEmployeesNeedImprovement(t *testing.T) {
	catalog, ids := testCatalog()
	target := Target{
		ID:               uuid.New(),
		RequiredSkillIDs: []uuid.UUID{ids[0], ids[1], ids[2]},
		TargetLevel:      LevelIntermediate,
		Scope:            ScopeGlobal,
	}

	population := map[uuid.UUID][]AcquiredSkill{
		uuid.New(): {{Name: "Figma", Level: LevelExpert}},
		uuid.New(): nil,
		uuid.New(): {{Name: "Excel", Level: LevelBeginner}},
	}

	out, err := Aggregate(context.Background(), []Target{target}, population, catalog, 2)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	got := out[target.ID]
	if got.EmployeesNeedingImprovement != len(population) {
		t.Fatalf("expected %d needing improvement, got %d", len(population), got.EmployeesNeedingImprovement)
	}
	if got.EmployeesEvaluated != len(population) {
		t.Fatalf("expected %d evaluated, got %d", len(population), got.EmployeesEvaluated)
	}
}

func TestAggregateMixedPopulation(t *testing.T) {
	catalog, ids := testCatalog()
	target := Target{
		ID:               uuid.New(),
		RequiredSkillIDs: []uuid.UUID{ids[0]},
		TargetLevel:      LevelIntermediate,
		Scope:            ScopeGlobal,
	}

	population := map[uuid.UUID][]AcquiredSkill{
		uuid.New(): {{Name: "Python", Level: LevelExpert}},
		uuid.New(): {{Name: "Python", Level: LevelBeginner}},
		uuid.New(): nil,
	}

	out, err := Aggregate(context.Background(), []Target{target}, population, catalog, 8)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got := out[target.ID].EmployeesNeedingImprovement; got != 2 {
		t.Fatalf("expected 2 needing improvement, got %d", got)
	}
}

func TestAggregateCancelled(t *testing.T) {
	catalog, ids := testCatalog()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	population := map[uuid.UUID][]AcquiredSkill{uuid.New(): nil}
	target := Target{ID: uuid.New(), RequiredSkillIDs: []uuid.UUID{ids[0]}, Scope: ScopeGlobal}

	if _, err := Aggregate(ctx, []Target{target}, population, catalog, 2); err == nil {
		t.Fatalf("expected context error")
	}
}

func TestAggregateNilCatalog(t *testing.T) {
	if _, err := Aggregate(context.Background(), nil, nil, nil, 1); err != ErrNilCatalog {
		t.Fatalf("expected ErrNilCatalog, got %v", err)
	}
}
