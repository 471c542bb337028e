package usecase

import (
	"context"
	"log"

	"skill-gap/internal/domain/activity"
	"skill-gap/internal/repository"

	"github.com/google/uuid"
)

const (
	defaultActivityLimit = 20
	maxActivityLimit     = 100
)

type ActivityUsecase interface {
	RecentActivity(ctx context.Context, employeeID uuid.UUID, limit int) ([]activity.Event, error)
}

type Activity struct {
	employees repository.EmployeeRepository
	events    repository.ActivityRepository
	logger    *log.Logger
}

func NewActivityUsecase(employees repository.EmployeeRepository, events repository.ActivityRepository, logger *log.Logger) *Activity {
	if logger == nil {
		logger = log.Default()
	}
	return &Activity{employees: employees, events: events, logger: logger}
}

func (u *Activity) RecentActivity(ctx context.Context, employeeID uuid.UUID, limit int) ([]activity.Event, error) {
	if employeeID == uuid.Nil {
		return nil, ErrInvalidInput
	}
	if limit < 0 {
		return nil, ErrInvalidInput
	}
	if limit == 0 {
		limit = defaultActivityLimit
	}
	if limit > maxActivityLimit {
		limit = maxActivityLimit
	}

	exists, err := u.employees.ExistsByID(ctx, employeeID)
	if err != nil {
		return nil, ErrInternal
	}
	if !exists {
		return nil, ErrEmployeeNotFound
	}

	personal, err := u.events.ListPersonal(ctx, employeeID, limit)
	if err != nil {
		return nil, ErrInternal
	}
	// The org feed includes the requester's own rows; fetch enough that
	// dropping them still leaves a full page.
	org, err := u.events.ListOrg(ctx, limit*2)
	if err != nil {
		return nil, ErrInternal
	}

	return activity.Merge(toEvents(personal), toEvents(org), employeeID, limit), nil
}
