package gap

import "github.com/google/uuid"

// Merge computes one Analysis per target in scope for an employee:
// every global target plus the targets assigned to them individually.
// A target id contributes exactly once; when a global and an individual
// target share an id the global-scope result wins.
func Merge(globalTargets, individualTargets []Target, acquired []AcquiredSkill, catalog *Catalog) ([]Analysis, error) {
	if catalog == nil {
		return nil, ErrNilCatalog
	}

	idx := indexAcquired(acquired)
	out := make([]Analysis, 0, len(globalTargets)+len(individualTargets))
	seen := make(map[uuid.UUID]struct{}, len(globalTargets)+len(individualTargets))

	for _, t := range globalTargets {
		if _, dup := seen[t.ID]; dup {
			continue
		}
		seen[t.ID] = struct{}{}
		out = append(out, idx.evaluate(t, catalog))
	}
	for _, t := range individualTargets {
		if _, dup := seen[t.ID]; dup {
			continue
		}
		seen[t.ID] = struct{}{}
		out = append(out, idx.evaluate(t, catalog))
	}

	return out, nil
}
