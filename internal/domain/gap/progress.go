package gap

import (
	"math"

	"github.com/google/uuid"
)

// Compute turns a resolved skill set into the per-target progress view.
// Only required ids that resolve in the catalog count toward the total,
// so a target referencing a deleted skill never penalizes the employee.
func Compute(requiredSkillIDs []uuid.UUID, satisfied map[uuid.UUID]struct{}, catalog *Catalog) (Analysis, error) {
	if catalog == nil {
		return Analysis{}, ErrNilCatalog
	}

	total := 0
	acquired := 0
	seen := make(map[uuid.UUID]struct{}, len(requiredSkillIDs))
	for _, id := range requiredSkillIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if _, ok := catalog.Lookup(id); !ok {
			continue
		}
		total++
		if _, ok := satisfied[id]; ok {
			acquired++
		}
	}

	percent := 0
	if total > 0 {
		percent = int(math.Round(float64(acquired) / float64(total) * 100))
	}

	return Analysis{
		TotalTargetSkills: total,
		AcquiredSkills:    acquired,
		ProgressPercent:   percent,
		SkillGap:          total - acquired,
		IsCompleted:       total == acquired && percent == 100,
	}, nil
}

// Evaluate runs resolution and progress for one employee against one
// target.
func Evaluate(t Target, acquired []AcquiredSkill, catalog *Catalog) (Analysis, error) {
	if catalog == nil {
		return Analysis{}, ErrNilCatalog
	}
	return indexAcquired(acquired).evaluate(t, catalog), nil
}

func (idx skillIndex) evaluate(t Target, catalog *Catalog) Analysis {
	satisfied := idx.resolve(t.RequiredSkillIDs, t.TargetLevel, catalog)
	a, _ := Compute(t.RequiredSkillIDs, satisfied, catalog)
	a.TargetID = t.ID
	a.Scope = t.Scope
	return a
}
