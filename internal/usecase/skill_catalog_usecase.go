package usecase

import (
	"context"

	"skill-gap/internal/repository"

	"github.com/google/uuid"
)

type SkillItem struct {
	ID       uuid.UUID
	Name     string
	Category string
}

type SkillCatalogUsecase interface {
	ListSkills(ctx context.Context) ([]SkillItem, error)
}

type SkillCatalog struct {
	repo repository.SkillRepository
}

func NewSkillCatalogUsecase(repo repository.SkillRepository) *SkillCatalog {
	return &SkillCatalog{repo: repo}
}

func (u *SkillCatalog) ListSkills(ctx context.Context) ([]SkillItem, error) {
	rows, err := u.repo.ListSkills(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	out := make([]SkillItem, 0, len(rows))
	for _, row := range rows {
		out = append(out, SkillItem{ID: row.ID, Name: row.Name, Category: row.Category})
	}
	return out, nil
}
