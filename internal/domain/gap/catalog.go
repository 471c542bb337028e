package gap

import "github.com/google/uuid"

// Catalog is a read-only index over the skill definitions snapshot.
type Catalog struct {
	byID map[uuid.UUID]SkillDefinition
}

func NewCatalog(defs []SkillDefinition) *Catalog {
	byID := make(map[uuid.UUID]SkillDefinition, len(defs))
	for _, d := range defs {
		if d.ID == uuid.Nil {
			continue
		}
		byID[d.ID] = d
	}
	return &Catalog{byID: byID}
}

func (c *Catalog) Lookup(id uuid.UUID) (SkillDefinition, bool) {
	if c == nil {
		return SkillDefinition{}, false
	}
	d, ok := c.byID[id]
	return d, ok
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.byID)
}
