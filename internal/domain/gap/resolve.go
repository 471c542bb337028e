package gap

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// ErrNilCatalog marks an invalid invocation, not a data-quality issue.
var ErrNilCatalog = errors.New("nil skill catalog")

// skillIndex maps a normalized acquired-skill name to the best ordinal
// the employee holds it at. Duplicate rows collapse to the strongest one.
type skillIndex map[string]indexedSkill

type indexedSkill struct {
	bestOrdinal int
	hasOrdinal  bool
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func indexAcquired(skills []AcquiredSkill) skillIndex {
	idx := make(skillIndex, len(skills))
	for _, s := range skills {
		key := normalizeName(s.Name)
		if key == "" {
			continue
		}
		entry := idx[key]
		if ord, ok := s.Level.Ordinal(); ok {
			if !entry.hasOrdinal || ord > entry.bestOrdinal {
				entry.bestOrdinal = ord
				entry.hasOrdinal = true
			}
		}
		idx[key] = entry
	}
	return idx
}

// satisfies reports whether the indexed employee meets targetLevel for the
// given catalog name. An unset target level is satisfied by any name
// match; an unknown target level is satisfied by nothing.
func (idx skillIndex) satisfies(name string, targetLevel ProficiencyLevel) bool {
	entry, ok := idx[normalizeName(name)]
	if !ok {
		return false
	}
	if targetLevel == LevelUnset {
		return true
	}
	required, ok := targetLevel.Ordinal()
	if !ok {
		return false
	}
	return entry.hasOrdinal && entry.bestOrdinal >= required
}

// Resolve returns the subset of requiredSkillIDs the employee satisfies.
// Required ids absent from the catalog are skipped. Matching is by
// case-insensitive name equality against the catalog definition.
func Resolve(acquired []AcquiredSkill, requiredSkillIDs []uuid.UUID, targetLevel ProficiencyLevel, catalog *Catalog) (map[uuid.UUID]struct{}, error) {
	if catalog == nil {
		return nil, ErrNilCatalog
	}
	return indexAcquired(acquired).resolve(requiredSkillIDs, targetLevel, catalog), nil
}

func (idx skillIndex) resolve(requiredSkillIDs []uuid.UUID, targetLevel ProficiencyLevel, catalog *Catalog) map[uuid.UUID]struct{} {
	satisfied := make(map[uuid.UUID]struct{}, len(requiredSkillIDs))
	for _, id := range requiredSkillIDs {
		def, ok := catalog.Lookup(id)
		if !ok {
			continue
		}
		if idx.satisfies(def.Name, targetLevel) {
			satisfied[id] = struct{}{}
		}
	}
	return satisfied
}
