package usecase

import (
	"context"

	"skill-gap/internal/repository"

	"github.com/google/uuid"
)

type EmployeeItem struct {
	ID       uuid.UUID
	FullName string
	Position string
}

type EmployeeUsecase interface {
	ListEmployees(ctx context.Context) ([]EmployeeItem, error)
}

type EmployeeDirectory struct {
	repo repository.EmployeeRepository
}

func NewEmployeeUsecase(repo repository.EmployeeRepository) *EmployeeDirectory {
	return &EmployeeDirectory{repo: repo}
}

func (u *EmployeeDirectory) ListEmployees(ctx context.Context) ([]EmployeeItem, error) {
	rows, err := u.repo.ListEmployees(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	out := make([]EmployeeItem, 0, len(rows))
	for _, row := range rows {
		out = append(out, EmployeeItem{ID: row.ID, FullName: row.FullName, Position: row.Position})
	}
	return out, nil
}
