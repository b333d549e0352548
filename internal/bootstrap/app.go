package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"synapflow-backend/internal/assessments"
	"synapflow-backend/internal/catalog"
	"synapflow-backend/internal/shared/config"
	"synapflow-backend/internal/shared/server"
	"synapflow-backend/internal/shared/storage/db"
)

// App holds the wired application dependencies.
type App struct {
	Config             config.Config
	Router             *gin.Engine
	DB                 *sql.DB
	Catalog            catalog.Catalog
	Repo               assessments.Repo
	AssessmentsService *assessments.Service
	AssessmentsHandler *assessments.Handler
	CatalogHandler     *catalog.Handler
}

// Build prepares dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	cat := catalog.Default()
	if err := catalog.Validate(cat); err != nil {
		return nil, fmt.Errorf("bootstrap: invalid catalog: %w", err)
	}

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	repo, err := buildRepo(cfg, sqlDB)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:  cfg,
		DB:      sqlDB,
		Catalog: cat,
		Repo:    repo,
	}
	app.AssessmentsService = assessments.NewService(repo, cat)
	app.AssessmentsHandler = assessments.NewHandler(app.AssessmentsService)
	app.CatalogHandler = catalog.NewHandler(cat)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:             app.Config,
		CatalogHandler:     app.CatalogHandler,
		AssessmentsHandler: app.AssessmentsHandler,
	})

	return app, nil
}

// buildDB connects when DATABASE_URL is set; dev-like environments fall
// back to non-durable repositories instead of failing.
func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required when ENV=%s", cfg.Env)
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; falling back: %v", err)
			return nil, nil
		}
		return nil, err
	}
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("bootstrap: migrations failed: %w", err)
	}
	return sqlDB, nil
}

// buildRepo picks Postgres, file-snapshot, or in-memory storage, in
// that order of preference.
func buildRepo(cfg config.Config, sqlDB *sql.DB) (assessments.Repo, error) {
	if sqlDB != nil {
		return &assessments.PGRepo{DB: sqlDB}, nil
	}
	if strings.TrimSpace(cfg.StateFile) != "" {
		repo, err := assessments.NewStateRepo(cfg.StateFile)
		if err != nil {
			return nil, fmt.Errorf("bootstrap: state file %s: %w", cfg.StateFile, err)
		}
		return repo, nil
	}
	return assessments.NewMemoryRepo(), nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
