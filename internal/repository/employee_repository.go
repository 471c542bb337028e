package repository

import (
	"context"

	"skill-gap/internal/database"

	"github.com/google/uuid"
)

type Employee struct {
	ID       uuid.UUID
	FullName string
	Position string
}

type EmployeeRepository interface {
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	ListEmployees(ctx context.Context) ([]Employee, error)
}

type PostgresEmployeeRepository struct {
	db database.DB
}

func NewPostgresEmployeeRepository(db database.DB) *PostgresEmployeeRepository {
	return &PostgresEmployeeRepository{db: db}
}

func (r *PostgresEmployeeRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM employees WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresEmployeeRepository) ListEmployees(ctx context.Context) ([]Employee, error) {
	rows, err := r.db.Query(ctx, `SELECT id, full_name, position FROM employees ORDER BY full_name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Employee, 0)
	for rows.Next() {
		var e Employee
		if err := rows.Scan(&e.ID, &e.FullName, &e.Position); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
