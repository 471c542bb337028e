package repository

import (
	"context"
	"database/sql"
	"time"

	"skill-gap/internal/database"

	"github.com/google/uuid"
)

type Target struct {
	ID               uuid.UUID
	Name             string
	Description      string
	TargetLevel      string
	TargetDate       *time.Time
	Scope            string
	OwnerID          uuid.UUID
	RequiredSkillIDs []uuid.UUID
}

type TargetRepository interface {
	ListGlobal(ctx context.Context) ([]Target, error)
	ListIndividual(ctx context.Context, employeeID uuid.UUID) ([]Target, error)
}

type PostgresTargetRepository struct {
	db database.DB
}

func NewPostgresTargetRepository(db database.DB) *PostgresTargetRepository {
	return &PostgresTargetRepository{db: db}
}

const targetSelect = `SELECT t.id, t.name, t.description, t.target_level, t.target_date, t.scope, t.owner_id, trs.skill_id
FROM skill_targets t
LEFT JOIN target_required_skills trs ON trs.target_id = t.id`

func (r *PostgresTargetRepository) ListGlobal(ctx context.Context) ([]Target, error) {
	rows, err := r.db.Query(ctx, targetSelect+` WHERE t.scope = 'global' ORDER BY t.created_at ASC, t.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTargets(rows)
}

func (r *PostgresTargetRepository) ListIndividual(ctx context.Context, employeeID uuid.UUID) ([]Target, error) {
	rows, err := r.db.Query(
		ctx,
		targetSelect+` WHERE t.scope = 'individual' AND t.owner_id = $1 ORDER BY t.created_at ASC, t.id`,
		employeeID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTargets(rows)
}

func collectTargets(rows database.Rows) ([]Target, error) {
	out := make([]Target, 0)
	index := make(map[uuid.UUID]int)

	for rows.Next() {
		var t Target
		var description, level sql.NullString
		var targetDate sql.NullTime
		var ownerID *uuid.UUID
		var skillID *uuid.UUID
		if err := rows.Scan(&t.ID, &t.Name, &description, &level, &targetDate, &t.Scope, &ownerID, &skillID); err != nil {
			return nil, err
		}

		i, ok := index[t.ID]
		if !ok {
			t.Description = description.String
			t.TargetLevel = level.String
			if targetDate.Valid {
				d := targetDate.Time
				t.TargetDate = &d
			}
			if ownerID != nil {
				t.OwnerID = *ownerID
			}
			index[t.ID] = len(out)
			out = append(out, t)
			i = index[t.ID]
		}
		if skillID != nil {
			out[i].RequiredSkillIDs = append(out[i].RequiredSkillIDs, *skillID)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
