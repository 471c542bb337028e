package repository

import (
	"context"
	"database/sql"
	"time"

	"skill-gap/internal/database"

	"github.com/google/uuid"
)

type EmployeeSkill struct {
	ID          uuid.UUID
	EmployeeID  uuid.UUID
	SkillName   string
	Category    string
	Level       string
	LastUpdated time.Time
}

type EmployeeSkillRepository interface {
	FindByEmployeeID(ctx context.Context, employeeID uuid.UUID) ([]EmployeeSkill, error)
	// FindAllGrouped returns the whole population keyed by employee id.
	// Employees without a single acquired skill still get an entry.
	FindAllGrouped(ctx context.Context) (map[uuid.UUID][]EmployeeSkill, error)
	Upsert(ctx context.Context, es EmployeeSkill) (EmployeeSkill, bool, error)
}

type PostgresEmployeeSkillRepository struct {
	db database.DB
}

func NewPostgresEmployeeSkillRepository(db database.DB) *PostgresEmployeeSkillRepository {
	return &PostgresEmployeeSkillRepository{db: db}
}

func (r *PostgresEmployeeSkillRepository) FindByEmployeeID(ctx context.Context, employeeID uuid.UUID) ([]EmployeeSkill, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, employee_id, skill_name, category, level, last_updated
		 FROM employee_skills WHERE employee_id = $1 ORDER BY skill_name ASC`,
		employeeID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]EmployeeSkill, 0)
	for rows.Next() {
		var es EmployeeSkill
		if err := rows.Scan(&es.ID, &es.EmployeeID, &es.SkillName, &es.Category, &es.Level, &es.LastUpdated); err != nil {
			return nil, err
		}
		out = append(out, es)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresEmployeeSkillRepository) FindAllGrouped(ctx context.Context) (map[uuid.UUID][]EmployeeSkill, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT e.id, es.id, es.skill_name, es.category, es.level, es.last_updated
		 FROM employees e
		 LEFT JOIN employee_skills es ON es.employee_id = e.id
		 ORDER BY e.id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[uuid.UUID][]EmployeeSkill)
	for rows.Next() {
		var employeeID uuid.UUID
		var skillID *uuid.UUID
		var name, category, level sql.NullString
		var updated sql.NullTime
		if err := rows.Scan(&employeeID, &skillID, &name, &category, &level, &updated); err != nil {
			return nil, err
		}

		if _, ok := out[employeeID]; !ok {
			out[employeeID] = []EmployeeSkill{}
		}
		if skillID == nil {
			continue
		}
		out[employeeID] = append(out[employeeID], EmployeeSkill{
			ID:          *skillID,
			EmployeeID:  employeeID,
			SkillName:   name.String,
			Category:    category.String,
			Level:       level.String,
			LastUpdated: updated.Time,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresEmployeeSkillRepository) Upsert(ctx context.Context, es EmployeeSkill) (EmployeeSkill, bool, error) {
	if es.ID == uuid.Nil {
		es.ID = uuid.New()
	}
	es.LastUpdated = time.Now().UTC()

	var id uuid.UUID
	var inserted bool
	err := r.db.QueryRow(
		ctx,
		`INSERT INTO employee_skills (id, employee_id, skill_name, category, level, last_updated)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (employee_id, lower(skill_name)) DO UPDATE
		 SET category = EXCLUDED.category, level = EXCLUDED.level, last_updated = EXCLUDED.last_updated
		 RETURNING id, (xmax = 0)`,
		es.ID, es.EmployeeID, es.SkillName, es.Category, es.Level, es.LastUpdated,
	).Scan(&id, &inserted)
	if err != nil {
		return EmployeeSkill{}, false, err
	}

	es.ID = id
	return es, inserted, nil
}
