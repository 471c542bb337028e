package gap

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// compiledTarget carries the catalog names a target resolves to, so the
// per-employee inner loop never touches the catalog again.
type compiledTarget struct {
	id    uuid.UUID
	names []string
	level ProficiencyLevel
}

func compileTargets(targets []Target, catalog *Catalog) []compiledTarget {
	compiled := make([]compiledTarget, 0, len(targets))
	seen := make(map[uuid.UUID]struct{}, len(targets))
	for _, t := range targets {
		if _, dup := seen[t.ID]; dup {
			continue
		}
		seen[t.ID] = struct{}{}

		ct := compiledTarget{id: t.ID, level: t.TargetLevel}
		seenSkill := make(map[uuid.UUID]struct{}, len(t.RequiredSkillIDs))
		for _, id := range t.RequiredSkillIDs {
			if _, dup := seenSkill[id]; dup {
				continue
			}
			seenSkill[id] = struct{}{}
			if def, ok := catalog.Lookup(id); ok {
				ct.names = append(ct.names, def.Name)
			}
		}
		compiled = append(compiled, ct)
	}
	return compiled
}

// Aggregate counts, per target, how many employees in the population
// still have a non-zero skill gap. The population is sharded across
// workers; each worker accumulates into its own counter slice and the
// shards are summed at the end, so no counter is shared mid-flight.
// Cancellation is honored between employees, never inside one.
func Aggregate(ctx context.Context, targets []Target, population map[uuid.UUID][]AcquiredSkill, catalog *Catalog, workers int) (map[uuid.UUID]OrgImprovement, error) {
	if catalog == nil {
		return nil, ErrNilCatalog
	}
	if workers <= 0 {
		workers = 1
	}

	compiled := compileTargets(targets, catalog)

	employees := make([][]AcquiredSkill, 0, len(population))
	for _, skills := range population {
		employees = append(employees, skills)
	}
	if workers > len(employees) && len(employees) > 0 {
		workers = len(employees)
	}

	shards := make([][]int, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		counts := make([]int, len(compiled))
		shards[w] = counts

		wg.Add(1)
		go func(offset int, counts []int) {
			defer wg.Done()
			for i := offset; i < len(employees); i += workers {
				select {
				case <-ctx.Done():
					return
				default:
				}
				idx := indexAcquired(employees[i])
				for ti, ct := range compiled {
					if employeeHasGap(idx, ct) {
						counts[ti]++
					}
				}
			}
		}(w, counts)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make(map[uuid.UUID]OrgImprovement, len(compiled))
	for ti, ct := range compiled {
		needing := 0
		for _, counts := range shards {
			needing += counts[ti]
		}
		out[ct.id] = OrgImprovement{
			EmployeesNeedingImprovement: needing,
			EmployeesEvaluated:          len(employees),
		}
	}
	return out, nil
}

func employeeHasGap(idx skillIndex, ct compiledTarget) bool {
	for _, name := range ct.names {
		if !idx.satisfies(name, ct.level) {
			return true
		}
	}
	return false
}
