package main

import (
	"github.com/labstack/echo/v4"

	"github.com/dcampos/red-social-backend/internal/router"
	"github.com/dcampos/red-social-backend/internal/session"
	"github.com/dcampos/red-social-backend/pkg/config"
	"github.com/dcampos/red-social-backend/pkg/logger"
	"github.com/dcampos/red-social-backend/validators"
)

func main() {
	config.LoadEnv()
	cfg := config.Load()

	logger.Init(logger.Options{
		Level:      cfg.LogLevel,
		Path:       cfg.LogPath,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
	})
	defer logger.Log.Sync()

	mongoClient := config.InitMongo(cfg.MongoURI)
	defer config.CloseMongo(mongoClient)
	db := mongoClient.Database(cfg.MongoDatabase)

	// Sessions live in Redis when configured, else in process memory.
	var sessions session.Store
	if cfg.RedisAddr != "" {
		sessions = session.NewRedisStore(config.NewRedisClient(cfg), cfg.SessionTTL)
	} else {
		logger.Sugar.Info("REDIS_ADDR not set, using in-memory sessions")
		sessions = session.NewMemoryStore(cfg.SessionTTL)
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = validators.NewValidator()

	router.SetupMiddleware(e, cfg)
	router.SetupRoutes(e, db, sessions, cfg)

	logger.Sugar.Infof("Servidor escuchando en puerto %s", cfg.Port)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
