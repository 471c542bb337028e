package seeder

import (
	"context"
	"fmt"
	"log"

	"skill-gap/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}

func RunAll(ctx context.Context, db database.DB, seeders []Seeder, logger *log.Logger) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	for _, s := range seeders {
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seeder %s: %w", s.Name(), err)
		}
		if logger != nil {
			logger.Printf("[Seeder] applied | name=%s", s.Name())
		}
	}
	return nil
}
