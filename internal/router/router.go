package router

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/dcampos/red-social-backend/internal/handlers"
	"github.com/dcampos/red-social-backend/internal/middleware"
	"github.com/dcampos/red-social-backend/internal/repositories"
	"github.com/dcampos/red-social-backend/internal/session"
	"github.com/dcampos/red-social-backend/pkg/config"
	"github.com/dcampos/red-social-backend/pkg/logger"
)

// SetupMiddleware configures global Echo middleware: panic recovery, request
// logging, CORS for the two frontend origins (with credentials, the session
// cookie travels cross-site in production) and no-cache headers.
func SetupMiddleware(e *echo.Echo, cfg *config.Config) {
	e.Use(echomw.Recover())
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogURI:    true,
		LogMethod: true,
		LogStatus: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}
			logger.Log.Info("request", fields...)
			return nil
		},
	}))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowCredentials: true,
	}))
	e.Use(middleware.NoCache())
}

// SetupRoutes wires repositories, handlers and the session gate onto the Echo
// instance. db may point at an unreachable server; routes then fail with 500s
// until it recovers, startup is not halted.
func SetupRoutes(e *echo.Echo, db *mongo.Database, sessions session.Store, cfg *config.Config) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := repositories.EnsureIndexes(ctx, db); err != nil {
		logger.Sugar.Warnw("index bootstrap failed, unique constraints may be missing", "error", err)
	}

	userRepo := repositories.NewMongoUserRepository(db)
	postRepo := repositories.NewMongoPostRepository(db)
	likeRepo := repositories.NewMongoLikeRepository(db)
	commentRepo := repositories.NewMongoCommentRepository(db)

	e.GET("/health", handlers.HealthCheck)

	authHandler := handlers.NewAuthHandler(userRepo, sessions, handlers.CookieSettings{
		Name:       cfg.SessionCookie,
		TTL:        cfg.SessionTTL,
		Production: cfg.IsProduction(),
	})
	authHandler.RegisterPublicRoutes(e)

	protected := e.Group("", middleware.SessionAuth(sessions, cfg.SessionCookie))
	authHandler.RegisterProtectedRoutes(protected)

	postHandler := handlers.NewPostHandler(postRepo, likeRepo, commentRepo)
	postHandler.RegisterPostRoutes(protected)

	likeHandler := handlers.NewLikeHandler(likeRepo)
	likeHandler.RegisterLikeRoutes(protected)

	commentHandler := handlers.NewCommentHandler(commentRepo)
	commentHandler.RegisterCommentRoutes(protected)

	logger.Sugar.Info("All routes configured.")
}
