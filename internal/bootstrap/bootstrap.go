package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/schoolhub/internal/app/controllers"
	appMigrations "github.com/yigit/schoolhub/internal/app/migrations"
	"github.com/yigit/schoolhub/internal/app/models"
	appRepos "github.com/yigit/schoolhub/internal/app/repositories"
	appRoutes "github.com/yigit/schoolhub/internal/app/routes"
	appServices "github.com/yigit/schoolhub/internal/app/services"
	"github.com/yigit/schoolhub/internal/config"
	"github.com/yigit/schoolhub/internal/db"
	appMiddleware "github.com/yigit/schoolhub/internal/middleware"
	pkgAuth "github.com/yigit/schoolhub/internal/pkg/auth"
	"github.com/yigit/schoolhub/internal/pkg/filestorage"
	"github.com/yigit/schoolhub/internal/pkg/helpers"
	"github.com/yigit/schoolhub/internal/pkg/logger"
	"github.com/yigit/schoolhub/internal/pkg/validation"
	"github.com/yigit/schoolhub/internal/seed"
	schema "github.com/yigit/schoolhub/migrations"
)

// UploadsURLPath is where stored files are served from.
const UploadsURLPath = "/uploads"

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos          *appRepos.Repositories
	Services       *appServices.Services
	Controllers    *appControllers.Controllers
	AuthMiddleware *appMiddleware.AuthMiddleware
	JWTService     *pkgAuth.JWTService
	FileStorage    *filestorage.LocalStorage
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := logger.Configure(logger.FromStrings(cfg.Logging.Level, cfg.Logging.Format))
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	if !cfg.Database.RunMigrations {
		lgr.Info().Msg("Database migrations disabled by configuration")
		return database, nil
	}

	lgr.Info().Msg("Running database migrations...")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	if err := appMigrations.NewMigrator(database.Pool).MigrateFS(ctx, schema.Files); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	baseURL := strings.TrimRight(cfg.Server.PublicBaseURL, "/")
	if baseURL == "" {
		baseURL = "http://localhost:" + cfg.Server.Port
	}
	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, baseURL+UploadsURLPath)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.Repos = appRepos.NewRepositories(database)
	deps.Services = appServices.NewServices(deps.Repos, deps.JWTService, deps.FileStorage, models.DefaultRoleCatalog)
	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)
	deps.Controllers = appControllers.NewControllers(deps.Services, cfg.Server.MaxUploadBytes)

	if cfg.Seed.Enabled {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		opts := seed.Options{AdminUsername: cfg.Seed.AdminUsername, AdminPassword: cfg.Seed.AdminPassword}
		if err := seed.CreateDefaultData(ctx, deps.Services.UserService, deps.Services.AcademicTermService, opts, lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	if err := validation.RegisterGinValidator(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestLogger(), appMiddleware.CORS(cfg.Server.AllowedOrigins))
	router.MaxMultipartMemory = cfg.Server.MaxUploadBytes

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware, deps.Services.AcademicYearService)
	router.Static(UploadsURLPath, cfg.Server.StoragePath)

	return router, nil
}
