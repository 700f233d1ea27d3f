package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/locvowork/hrms_lite/internal/config"
	"github.com/locvowork/hrms_lite/internal/database"
	"github.com/locvowork/hrms_lite/internal/handler"
	"github.com/locvowork/hrms_lite/internal/logger"
	"github.com/locvowork/hrms_lite/internal/repository"
	"github.com/locvowork/hrms_lite/internal/service"
)

type App struct {
	Echo *echo.Echo
	DB   *sql.DB
}

func NewApp() *App {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	return &App{Echo: e}
}

// Initialize loads configuration, opens and migrates the database and wires
// the HTTP surface.
func (a *App) Initialize(ctx context.Context) error {
	if err := config.LoadEnvConfig(); err != nil {
		return fmt.Errorf("failed to load env config: %w", err)
	}

	logger.InitLogging(config.DefaultEnvConfig.LOG_FILE_PATH, config.DefaultEnvConfig.LOG_LEVEL)
	logger.InfoLog(ctx, "Environment variables loaded successfully")

	db, err := OpenDatabase(ctx)
	if err != nil {
		return err
	}

	a.Setup(db)
	return nil
}

// DatabaseConfig maps the loaded environment onto database.Config.
func DatabaseConfig() database.Config {
	env := config.DefaultEnvConfig
	return database.Config{
		Driver:          env.DB_DRIVER,
		URL:             env.DATABASE_URL,
		Host:            env.DB_HOST,
		Port:            env.DB_PORT,
		User:            env.DB_USER,
		Password:        env.DB_PASSWORD,
		DBName:          env.DB_NAME,
		SSLMode:         env.DB_SSL_MODE,
		SQLitePath:      env.SQLITE_PATH,
		MaxOpenConns:    env.DB_MAX_OPEN_CONNS,
		MaxIdleConns:    env.DB_MAX_IDLE_CONNS,
		ConnMaxLifetime: env.DB_CONN_MAX_LIFETIME,
	}
}

// OpenDatabase connects with the loaded configuration and applies the schema.
func OpenDatabase(ctx context.Context) (*sql.DB, error) {
	cfg := DatabaseConfig()

	db, err := database.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	if err := database.Migrate(ctx, db, cfg.Driver); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	logger.InfoLog(ctx, "Database connection established successfully (%s)", cfg.Driver)
	return db, nil
}

// Setup wires repositories, services and handlers on top of db.
func (a *App) Setup(db *sql.DB) {
	a.DB = db

	empRepo := repository.NewEmployeeRepository(db)
	attRepo := repository.NewAttendanceRepository(db)

	empHandler := handler.NewEmployeeHandler(service.NewEmployeeService(empRepo))
	attHandler := handler.NewAttendanceHandler(service.NewAttendanceService(attRepo))
	sysHandler := handler.NewSystemHandler(service.NewSummaryService(empRepo, attRepo))

	a.RegisterMiddlewares()
	a.RegisterRoutes(empHandler, attHandler, sysHandler)
}

func (a *App) RegisterMiddlewares() {
	a.Echo.Use(middleware.Recover())
	a.Echo.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	a.Echo.Use(requestLogger())
	a.Echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{
			http.MethodGet, http.MethodHead, http.MethodPut, http.MethodPatch,
			http.MethodPost, http.MethodDelete, http.MethodOptions,
		},
		// empty AllowHeaders reflects whatever the preflight asks for
	}))
}

func (a *App) RegisterRoutes(emp *handler.EmployeeHandler, att *handler.AttendanceHandler, sys *handler.SystemHandler) {
	api := a.Echo.Group("/api")

	api.GET("/health", sys.HealthHandler)
	api.GET("/summary", sys.SummaryHandler)

	api.POST("/employees", emp.CreateHandler)
	api.GET("/employees", emp.ListHandler)
	api.DELETE("/employees/:employee_id", emp.DeleteHandler)
	api.GET("/employees/:employee_id/attendance", att.ListForEmployeeHandler)

	api.POST("/attendance", att.MarkHandler)
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	defer a.DB.Close()

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + config.DefaultEnvConfig.APP_PORT
		logger.InfoLog(ctx, "HTTP server listening on %s", addr)
		errCh <- a.Echo.Start(addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.InfoLog(context.Background(), "Shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.DefaultEnvConfig.SHUTDOWN_TIMEOUT)
		defer cancel()
		return a.Echo.Shutdown(shutdownCtx)
	}
}

// requestLogger attaches a request scoped logger to the context and logs
// every finished request.
func requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			ctx := logger.WithLogger(req.Context(), map[string]interface{}{
				"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
			})
			c.SetRequest(req.WithContext(ctx))

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			logger.Request(ctx, req.Method, req.RequestURI, c.Response().Status, time.Since(start).Milliseconds(), err)
			return nil
		}
	}
}
