package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tanaoroshi/masterdata-backend/internal/db"
	"github.com/tanaoroshi/masterdata-backend/internal/platform/logger"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Router   *gin.Engine
	Cfg      Config
	Repos    Repos
	Services Services
}

// New boots the whole application: configuration, logger, database,
// migration and wiring, in that order.
func New(configDir string) (*App, error) {
	cfg, err := LoadConfig(configDir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.NewWithLevel(cfg.Log.Mode, cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	log.Info("Configuration loaded", "env", cfg.Env)

	pg, err := db.NewPostgresService(cfg.DBConfig(), log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init postgres: %w", err)
	}
	if err := pg.AutoMigrateAll(); err != nil {
		log.Sync()
		return nil, fmt.Errorf("postgres automigrate: %w", err)
	}
	theDB := pg.DB()

	reposet := wireRepos(theDB, log)
	serviceset := wireServices(theDB, log, reposet)
	handlerset := wireHandlers(log, serviceset)
	router := wireRouter(cfg, log, handlerset)

	return &App{
		Log:      log,
		DB:       theDB,
		Router:   router,
		Cfg:      cfg,
		Repos:    reposet,
		Services: serviceset,
	}, nil
}

func (a *App) Run() error {
	if a == nil || a.Router == nil {
		return fmt.Errorf("app not initialized")
	}
	a.Log.Info("Server listening", "port", a.Cfg.Server.Port)
	return a.Router.Run(":" + a.Cfg.Server.Port)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
