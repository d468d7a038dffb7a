// Package bootstrap assembles the placement API from configuration: logger,
// storage, migrations, demo data, sessions, services and the gin router.
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appAuth "github.com/adithi-k-max/FSAD-project/internal/app/auth"
	appControllers "github.com/adithi-k-max/FSAD-project/internal/app/controllers"
	appMigrations "github.com/adithi-k-max/FSAD-project/internal/app/migrations"
	appRepos "github.com/adithi-k-max/FSAD-project/internal/app/repositories"
	"github.com/adithi-k-max/FSAD-project/internal/app/repositories/memory"
	appRoutes "github.com/adithi-k-max/FSAD-project/internal/app/routes"
	appServices "github.com/adithi-k-max/FSAD-project/internal/app/services"
	"github.com/adithi-k-max/FSAD-project/internal/config"
	"github.com/adithi-k-max/FSAD-project/internal/db"
	appMiddleware "github.com/adithi-k-max/FSAD-project/internal/middleware"
	pkgAuth "github.com/adithi-k-max/FSAD-project/internal/pkg/auth"
	"github.com/adithi-k-max/FSAD-project/internal/pkg/logger"
	"github.com/adithi-k-max/FSAD-project/internal/pkg/session"
	"github.com/adithi-k-max/FSAD-project/internal/pkg/validation"
	"github.com/adithi-k-max/FSAD-project/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Store        appRepos.Store
	Pool         *pgxpool.Pool // nil with the memory driver
	Services     *appServices.Services
	AuthzService *appAuth.AuthorizationService
	Sessions     *session.Manager
	SessionStore session.Store
	Controllers  appRoutes.Controllers
	AuthMW       *appMiddleware.AuthMiddleware
	Logger       zerolog.Logger
}

// ConfigPath returns the config file location, overridable with CONFIG_PATH
func ConfigPath() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return filepath.Join("configs", "config.yaml")
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(ConfigPath())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := SetupLogger(cfg)
	if cfg.UsesDevSessionSecret() {
		lgr.Warn().Msg("No session secret configured, using the development secret")
	}
	return cfg, lgr, nil
}

// SetupLogger configures the global logger from cfg and returns it
func SetupLogger(cfg *config.Config) zerolog.Logger {
	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := logger.Get()
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return lgr
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	if err := RunMigrations(cfg); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	return database.Pool, nil
}

// RunMigrations applies every pending migration
func RunMigrations(cfg *config.Config) error {
	migrator, err := appMigrations.NewMigrator(cfg.GetPostgresConnectionString())
	if err != nil {
		return err
	}
	defer migrator.Close()
	return migrator.Up()
}

// SetupStore opens the configured data store. The pool is nil for the memory driver.
func SetupStore(cfg *config.Config, lgr zerolog.Logger) (appRepos.Store, *pgxpool.Pool, error) {
	if cfg.Database.Driver == config.DriverMemory {
		lgr.Warn().Msg("Using in-memory store, data is lost on restart")
		return memory.New(), nil, nil
	}

	pool, err := SetupDatabase(cfg, lgr)
	if err != nil {
		return nil, nil, err
	}
	return appRepos.NewRepositories(pool), pool, nil
}

// SeedData loads the demo data when enabled. Failures are logged, not fatal.
func SeedData(ctx context.Context, cfg *config.Config, store appRepos.Store, lgr zerolog.Logger) *seed.Credentials {
	if !cfg.Seed.Enabled {
		return nil
	}
	creds, err := seed.CreateDefaultData(ctx, store, seed.Options{LogCredentials: !cfg.IsProduction()}, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		return nil
	}
	return creds
}

// newSessionStore picks the session backend
func newSessionStore(cfg *config.Config, pool *pgxpool.Pool) (session.Store, error) {
	switch cfg.Session.Store {
	case config.DriverMemory:
		return session.NewMemoryStore(), nil
	case config.DriverPostgres:
		if pool == nil {
			return nil, fmt.Errorf("postgres session store needs a database pool")
		}
		return session.NewPostgresStore(pool), nil
	}
	return nil, fmt.Errorf("unsupported session store %q", cfg.Session.Store)
}

// BuildDependencies initializes services, sessions, middleware and controllers.
func BuildDependencies(cfg *config.Config, store appRepos.Store, pool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Store: store, Pool: pool, Logger: lgr}

	sessionStore, err := newSessionStore(cfg, pool)
	if err != nil {
		return nil, err
	}
	deps.SessionStore = sessionStore

	tokens := pkgAuth.NewSessionTokenService(cfg.Session.Secret, cfg.Session.MaxAge)
	deps.Sessions = session.NewManager(sessionStore, tokens, cfg.Session.MaxAge)

	deps.AuthzService = appAuth.NewAuthorizationService(store)
	deps.Services = appServices.NewServices(store, deps.AuthzService, appServices.AuthOptions{
		RestrictPrivilegedRegistration: cfg.Auth.RestrictPrivilegedRegistration,
	}, lgr)

	deps.AuthMW = appMiddleware.NewAuthMiddleware(deps.Sessions, store, appMiddleware.CookieConfig{
		Name:   cfg.Session.CookieName,
		Secure: cfg.IsProduction(),
	})

	var pinger appControllers.Pinger
	if pool != nil {
		pinger = pool
	}

	deps.Controllers = appRoutes.Controllers{
		Auth:         appControllers.NewAuthController(deps.Services.Auth, deps.Sessions, deps.AuthMW, lgr),
		Jobs:         appControllers.NewJobController(deps.Services.Jobs, deps.Services.Applications),
		Applications: appControllers.NewApplicationController(deps.Services.Applications, lgr),
		Users:        appControllers.NewUserController(deps.Services.Admin),
		Health:       appControllers.NewHealthController(pinger),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	switch cfg.Server.Mode {
	case config.ModeProduction:
		gin.SetMode(gin.ReleaseMode)
	case config.ModeTest:
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	lgr.Info().Str("ginMode", gin.Mode()).Msg("Gin mode set")

	validation.Register()

	router := gin.New()
	router.Use(appMiddleware.Recovery())
	router.Use(appMiddleware.RequestLogger())
	router.Use(appMiddleware.CORS(cfg.Server.AllowedOrigins))

	if !cfg.IsProduction() {
		appRoutes.SetupSwagger(router)
	}

	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMW)

	return router
}

// StartSessionPruner removes expired sessions every check period until ctx ends
func StartSessionPruner(ctx context.Context, cfg *config.Config, deps *Dependencies) {
	go deps.Sessions.RunPruner(ctx, cfg.Session.CheckPeriod)
}
