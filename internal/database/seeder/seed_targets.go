package seeder

import (
	"context"
	"fmt"

	"skill-gap/internal/database"
)

// TargetsSeeder creates one organization-wide baseline target over the
// core engineering skills so a fresh install has something to analyze.
type TargetsSeeder struct{}

func (TargetsSeeder) Name() string { return "skill_targets" }

func (TargetsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "skill_targets", "id", "name", "description", "target_level", "scope"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "target_required_skills", "target_id", "skill_id"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	_, err = tx.Exec(
		ctx,
		`INSERT INTO skill_targets (id, name, description, target_level, scope)
		 VALUES (gen_random_uuid(), $1, $2, $3, 'global')
		 ON CONFLICT (name) DO NOTHING`,
		"Engineering Baseline",
		"Core skills every engineer is expected to hold at intermediate level",
		"intermediate",
	)
	if err != nil {
		return err
	}

	_, err = tx.Exec(
		ctx,
		`INSERT INTO target_required_skills (target_id, skill_id)
		 SELECT t.id, s.id FROM skill_targets t, skills s
		 WHERE t.name = $1 AND s.name = ANY($2)
		 ON CONFLICT DO NOTHING`,
		"Engineering Baseline",
		[]string{"Python", "SQL", "Docker"},
	)
	if err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
