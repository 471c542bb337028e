package usecase

import (
	"log"
	"strings"
	"time"

	"skill-gap/internal/domain/activity"
	"skill-gap/internal/domain/gap"
	"skill-gap/internal/repository"
)

func toCatalog(skills []repository.Skill) *gap.Catalog {
	defs := make([]gap.SkillDefinition, 0, len(skills))
	for _, s := range skills {
		defs = append(defs, gap.SkillDefinition{ID: s.ID, Name: s.Name, Category: s.Category})
	}
	return gap.NewCatalog(defs)
}

// toAcquired carries unknown levels through unchanged so they fail the
// ordinal check instead of masquerading as beginner; the diagnostic is
// the only place that knows the raw value was bad.
func toAcquired(rows []repository.EmployeeSkill, logger *log.Logger) []gap.AcquiredSkill {
	out := make([]gap.AcquiredSkill, 0, len(rows))
	for _, row := range rows {
		level := gap.ProficiencyLevel(strings.ToLower(strings.TrimSpace(row.Level)))
		if level != gap.LevelUnset && !level.Valid() && logger != nil {
			logger.Printf("[GapAnalysis] unrecognized proficiency level | employee=%s skill=%q level=%q", row.EmployeeID, row.SkillName, row.Level)
		}
		out = append(out, gap.AcquiredSkill{
			OwnerID:     row.EmployeeID,
			Name:        row.SkillName,
			Category:    row.Category,
			Level:       level,
			LastUpdated: row.LastUpdated,
		})
	}
	return out
}

func toTargets(rows []repository.Target, logger *log.Logger) []gap.Target {
	out := make([]gap.Target, 0, len(rows))
	for _, row := range rows {
		level := gap.ProficiencyLevel(strings.ToLower(strings.TrimSpace(row.TargetLevel)))
		if level != gap.LevelUnset && !level.Valid() && logger != nil {
			logger.Printf("[GapAnalysis] unrecognized target level | target=%s level=%q", row.ID, row.TargetLevel)
		}
		var targetDate *time.Time
		if row.TargetDate != nil {
			d := *row.TargetDate
			targetDate = &d
		}
		out = append(out, gap.Target{
			ID:               row.ID,
			Name:             row.Name,
			Description:      row.Description,
			RequiredSkillIDs: row.RequiredSkillIDs,
			TargetLevel:      level,
			TargetDate:       targetDate,
			Scope:            gap.Scope(row.Scope),
			OwnerID:          row.OwnerID,
		})
	}
	return out
}

func toEvents(rows []repository.ActivityEvent) []activity.Event {
	out := make([]activity.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, activity.Event{
			ID:         row.ID,
			OwnerID:    row.OwnerID,
			Action:     row.Action,
			Subject:    row.Subject,
			OccurredAt: row.OccurredAt,
		})
	}
	return out
}
