// Package bootstrap wires configuration, storage, repositories, services,
// controllers, and routes into a runnable application.
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/hillcrest/college-backend/internal/app/controllers"
	appMigrations "github.com/hillcrest/college-backend/internal/app/migrations"
	"github.com/hillcrest/college-backend/internal/app/models"
	appRepos "github.com/hillcrest/college-backend/internal/app/repositories"
	appRoutes "github.com/hillcrest/college-backend/internal/app/routes"
	appServices "github.com/hillcrest/college-backend/internal/app/services"
	"github.com/hillcrest/college-backend/internal/config"
	"github.com/hillcrest/college-backend/internal/db"
	appMiddleware "github.com/hillcrest/college-backend/internal/middleware"
	pkgAuth "github.com/hillcrest/college-backend/internal/pkg/auth"
	"github.com/hillcrest/college-backend/internal/pkg/blobstore"
	"github.com/hillcrest/college-backend/internal/pkg/docrender"
	"github.com/hillcrest/college-backend/internal/pkg/helpers"
	"github.com/hillcrest/college-backend/internal/pkg/logger"
	"github.com/hillcrest/college-backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos          *appRepos.Repositories
	BlobStore      blobstore.Store
	JWTService     *pkgAuth.JWTService
	AuthMiddleware *appMiddleware.AuthMiddleware
	Controllers    *appRoutes.Controllers
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
// A .env file in the working directory is applied first when present.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn().Err(err).Msg("Failed to load .env file")
	}

	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations, and
// seeds the default admin account.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	userRepo := appRepos.NewUserRepository(dbPool)
	if err := seed.EnsureAdminUser(context.Background(), userRepo, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		// Log but don't fail startup: the admin may be provisioned by hand.
		lgr.Error().Err(err).Msg("Failed to seed admin user, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, the blob store, services, and
// controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	blob, err := blobstore.NewS3Store(context.Background(), blobstore.S3Config{
		Endpoint:      cfg.BlobStore.Endpoint,
		Region:        cfg.BlobStore.Region,
		Bucket:        cfg.BlobStore.Bucket,
		AccessKey:     cfg.BlobStore.AccessKey,
		SecretKey:     cfg.BlobStore.SecretKey,
		PublicBaseURL: cfg.BlobStore.PublicBaseURL,
	})
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize blob store")
		return nil, fmt.Errorf("failed to initialize blob store: %w", err)
	}
	deps.BlobStore = blob

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    helpers.ParseDuration(cfg.JWT.TokenExpiration, 24*time.Hour),
		TokenIssuer: cfg.JWT.Issuer,
	})

	authService := appServices.NewAuthService(deps.Repos.Users, deps.JWTService, lgr)
	userService := appServices.NewUserService(deps.Repos.Users, lgr)

	courseService := appServices.NewContentService(deps.Repos.Courses, blob, models.CourseDescriptor, lgr)
	blogPostService := appServices.NewContentService(deps.Repos.BlogPosts, blob, models.BlogPostDescriptor, lgr)
	successStoryService := appServices.NewContentService(deps.Repos.SuccessStories, blob, models.SuccessStoryDescriptor, lgr)
	galleryService := appServices.NewContentService(deps.Repos.Gallery, blob, models.GalleryItemDescriptor, lgr)
	heroImageService := appServices.NewContentService(deps.Repos.HeroImages, blob, models.HeroImageDescriptor, lgr)
	pillarService := appServices.NewContentService(deps.Repos.Pillars, blob, models.PillarDescriptor, lgr)
	messageService := appServices.NewContentService(deps.Repos.Messages, nil, models.MessageDescriptor, lgr)

	applicationService := appServices.NewApplicationService(deps.Repos.Applications, lgr)
	exportService := appServices.NewExportService(
		deps.Repos.Applications,
		docrender.NewDocxRenderer(),
		cfg.Export.ApplicationTemplate,
		lgr,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.Controllers = &appRoutes.Controllers{
		Auth:           appControllers.NewAuthController(authService),
		Users:          appControllers.NewUserController(userService),
		Courses:        appControllers.NewContentController(courseService, models.CourseDescriptor),
		BlogPosts:      appControllers.NewContentController(blogPostService, models.BlogPostDescriptor),
		SuccessStories: appControllers.NewContentController(successStoryService, models.SuccessStoryDescriptor),
		Gallery:        appControllers.NewContentController(galleryService, models.GalleryItemDescriptor),
		HeroImages:     appControllers.NewContentController(heroImageService, models.HeroImageDescriptor),
		Pillars:        appControllers.NewContentController(pillarService, models.PillarDescriptor),
		Applications:   appControllers.NewApplicationController(applicationService, exportService),
		Messages:       appControllers.NewContentController(messageService, models.MessageDescriptor),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()
	router.Use(appMiddleware.CORS(cfg.AllowedOrigins()))

	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)

	return router
}
