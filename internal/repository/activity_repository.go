package repository

import (
	"context"

	"skill-gap/internal/database"

	"github.com/google/uuid"
)

// ActivityEvent rows keep occurred_at as the stored text so a corrupt
// timestamp reaches the merge logic instead of failing the scan.
// OwnerID is uuid.Nil for organization-wide events with no author.
type ActivityEvent struct {
	ID         uuid.UUID
	OwnerID    uuid.UUID
	Action     string
	Subject    string
	OccurredAt string
}

type ActivityRepository interface {
	ListPersonal(ctx context.Context, employeeID uuid.UUID, limit int) ([]ActivityEvent, error)
	ListOrg(ctx context.Context, limit int) ([]ActivityEvent, error)
	Record(ctx context.Context, ev ActivityEvent) error
}

type PostgresActivityRepository struct {
	db database.DB
}

func NewPostgresActivityRepository(db database.DB) *PostgresActivityRepository {
	return &PostgresActivityRepository{db: db}
}

func (r *PostgresActivityRepository) ListPersonal(ctx context.Context, employeeID uuid.UUID, limit int) ([]ActivityEvent, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, owner_id, action, subject, occurred_at
		 FROM activity_events WHERE owner_id = $1
		 ORDER BY occurred_at DESC LIMIT $2`,
		employeeID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEvents(rows)
}

func (r *PostgresActivityRepository) ListOrg(ctx context.Context, limit int) ([]ActivityEvent, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, owner_id, action, subject, occurred_at
		 FROM activity_events
		 ORDER BY occurred_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEvents(rows)
}

func (r *PostgresActivityRepository) Record(ctx context.Context, ev ActivityEvent) error {
	if ev.ID == uuid.Nil {
		ev.ID = uuid.New()
	}
	var ownerID *uuid.UUID
	if ev.OwnerID != uuid.Nil {
		ownerID = &ev.OwnerID
	}
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO activity_events (id, owner_id, action, subject, occurred_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		ev.ID, ownerID, ev.Action, ev.Subject, ev.OccurredAt,
	)
	return err
}

func collectEvents(rows database.Rows) ([]ActivityEvent, error) {
	out := make([]ActivityEvent, 0)
	for rows.Next() {
		var ev ActivityEvent
		var ownerID *uuid.UUID
		if err := rows.Scan(&ev.ID, &ownerID, &ev.Action, &ev.Subject, &ev.OccurredAt); err != nil {
			return nil, err
		}
		if ownerID != nil {
			ev.OwnerID = *ownerID
		}
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
