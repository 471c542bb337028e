package seeder

import (
	"context"
	"fmt"

	"skill-gap/internal/database"
)

// EmployeesSeeder inserts a small demo roster so a fresh install has
// something to analyze before real HR data lands.
type EmployeesSeeder struct{}

func (EmployeesSeeder) Name() string { return "employees" }

func (EmployeesSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "employees", "id", "full_name", "position", "created_at"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	items := []struct {
		FullName string
		Position string
	}{
		{FullName: "Alice Hartono", Position: "Backend Engineer"},
		{FullName: "Budi Santoso", Position: "Data Analyst"},
		{FullName: "Citra Lestari", Position: "DevOps Engineer"},
	}

	for _, it := range items {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO employees (id, full_name, position)
			 SELECT gen_random_uuid(), $1, $2
			 WHERE NOT EXISTS (SELECT 1 FROM employees WHERE full_name = $1)`,
			it.FullName,
			it.Position,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
