package app

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"mitronet/internal/config"
	"mitronet/internal/database"
	dbmigration "mitronet/internal/database/migration"
	dbpostgres "mitronet/internal/database/postgres"
	"mitronet/internal/delivery/http/middleware"
	"mitronet/internal/delivery/http/routes"
	"mitronet/internal/session"
	"mitronet/internal/storage"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber    *fiber.App
	DB       database.DB
	Sessions *session.Store
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}

	runner := dbmigration.Runner{Dir: cfg.Database.MigrationsDir}
	if err := runner.Run(ctx, db.SQLDB()); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("run migrations: %w", err)
	}

	sessions, err := session.NewStore(ctx, cfg.Redis, cfg.Session.TTL)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	images, err := storage.NewImageStore(cfg.Uploads.Dir)
	if err != nil {
		_ = sessions.Close()
		_ = db.Close()
		return nil, nil, fmt.Errorf("init image store: %w", err)
	}

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	f.Use(middleware.NewAccessLogMiddleware(log.Default()).Middleware())
	f.Use(middleware.NewErrorMiddleware().Middleware())

	routes.NewRegistry(cfg, db, sessions, images).Register(f)

	app := &App{Fiber: f, DB: db, Sessions: sessions}
	cleanup := func() error {
		var firstErr error
		if err := sessions.Close(); err != nil {
			firstErr = err
		}
		if err := db.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		return firstErr
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
