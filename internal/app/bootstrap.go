package app

import (
	"fmt"
	"log"
	"strings"

	"skill-gap/internal/config"
	"skill-gap/internal/delivery/http/handler"
	"skill-gap/internal/delivery/http/middleware"
	"skill-gap/internal/delivery/http/routes"
	v1 "skill-gap/internal/delivery/http/routes/v1"
	"skill-gap/internal/repository"
	"skill-gap/internal/scheduler"
	"skill-gap/internal/usecase"
	"skill-gap/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Hub       *ws.Hub
	Scheduler *scheduler.Scheduler
}

func Bootstrap(cfg config.Config, c *Container, logger *log.Logger) (*App, func() error, error) {
	if logger == nil {
		logger = log.Default()
	}

	employees := repository.NewPostgresEmployeeRepository(c.DB)
	skills := repository.NewPostgresSkillRepository(c.DB)
	employeeSkills := repository.NewPostgresEmployeeSkillRepository(c.DB)
	targets := repository.NewPostgresTargetRepository(c.DB)
	events := repository.NewPostgresActivityRepository(c.DB)

	gapUC := usecase.NewGapAnalysisUsecase(employees, skills, employeeSkills, targets, logger)
	orgUC := usecase.NewOrgGapUsecase(skills, employeeSkills, targets, c.Cache, cfg.Aggregation.Workers, cfg.Aggregation.CacheTTL, logger)
	activityUC := usecase.NewActivityUsecase(employees, events, logger)
	employeeSkillUC := usecase.NewEmployeeSkillUsecase(employees, employeeSkills, events, c.Cache, logger)
	catalogUC := usecase.NewSkillCatalogUsecase(skills)
	employeeUC := usecase.NewEmployeeUsecase(employees)

	hub := ws.NewHub(logger)
	go hub.Run()
	ws.SetDefaultHub(hub)

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})
	f.Use(middleware.NewErrorMiddleware().Middleware())
	f.Use(middleware.NewAccessLogMiddleware(logger).Middleware())

	registry := routes.NewRegistry(v1.Handlers{
		Skills:         handler.NewSkillHandler(catalogUC),
		Employees:      handler.NewEmployeeHandler(employeeUC),
		EmployeeSkills: handler.NewEmployeeSkillHandler(employeeSkillUC),
		GapAnalysis:    handler.NewGapAnalysisHandler(gapUC, orgUC),
		Activity:       handler.NewActivityHandler(activityUC),
	}, ws.NewHandler(hub, logger))
	registry.Register(f)

	sched := scheduler.New(orgUC, logger)
	if err := sched.Start(cfg.Aggregation.CronSchedule); err != nil {
		return nil, nil, fmt.Errorf("start scheduler: %w", err)
	}

	app := &App{Fiber: f, Hub: hub, Scheduler: sched}
	cleanup := func() error {
		sched.Stop()
		return nil
	}
	return app, cleanup, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
