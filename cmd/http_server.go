package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/frahmantamala/org-directory/internal"
	"github.com/frahmantamala/org-directory/internal/audit"
	"github.com/frahmantamala/org-directory/internal/auth"
	"github.com/frahmantamala/org-directory/internal/core/events"
	departmentPostgres "github.com/frahmantamala/org-directory/internal/department/postgres"
	"github.com/frahmantamala/org-directory/internal/employee"
	employeePostgres "github.com/frahmantamala/org-directory/internal/employee/postgres"
	"github.com/frahmantamala/org-directory/internal/hierarchy"
	"github.com/frahmantamala/org-directory/internal/transport/rest"
	"github.com/frahmantamala/org-directory/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server serving the directory API`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type dependencies struct {
	Config           *internal.Config
	DB               *sqlx.DB
	Router           *chi.Mux
	Logger           *slog.Logger
	AuthHandler      *auth.Handler
	EmployeeHandler  *employee.Handler
	HierarchyHandler *hierarchy.Handler
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	rest.RegisterAllRoutes(
		deps.Router,
		deps.DB.DB,
		deps.AuthHandler,
		deps.EmployeeHandler,
		deps.HierarchyHandler,
		deps.Config.Server.AllowedOrigins,
		deps.Logger,
	)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:              addr,
		Handler:           deps.Router,
		ReadHeaderTimeout: deps.Config.Server.ReadHeaderTimeout,
		ReadTimeout:       deps.Config.Server.ReadTimeout,
		WriteTimeout:      deps.Config.Server.WriteTimeout,
		IdleTimeout:       deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("received signal, shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			deps.Logger.Error("database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("server stopped")
}

func initializeDependencies() (*dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Logging.Level, config.Logging.Format)
	lg := logger.LoggerWrapper()

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: db.DB}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm connection: %w", err)
	}

	employeeRepo := employeePostgres.NewEmployeeRepository(gormDB)
	departmentRepo := departmentPostgres.NewDepartmentRepository(gormDB)

	eventBus := events.NewEventBus(lg)
	audit.NewLogger(lg).Register(eventBus)

	tokenGen := auth.NewJWTTokenGenerator(
		config.Security.JWTSecret,
		config.Security.AccessTokenDuration,
	)
	authService := auth.NewService(employeeRepo, tokenGen, lg)
	employeeService := employee.NewService(employeeRepo, eventBus, lg, config.Security.BCryptCost)
	hierarchyService := hierarchy.NewService(employeeRepo, departmentRepo, lg)

	return &dependencies{
		Config:           config,
		DB:               db,
		Router:           chi.NewRouter(),
		Logger:           lg,
		AuthHandler:      auth.NewHandler(authService),
		EmployeeHandler:  employee.NewHandler(employeeService),
		HierarchyHandler: hierarchy.NewHandler(hierarchyService),
	}, nil
}

// initDB initializes the database connection
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	// verify connection; close underlying *sql.DB on failure
	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}
