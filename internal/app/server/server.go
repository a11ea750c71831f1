package server

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"hrportal/internal/platform/config"
	"hrportal/internal/platform/logging"
	"hrportal/internal/platform/metrics"
	"hrportal/internal/store"
	"hrportal/internal/transport/http/api"
	activityhandler "hrportal/internal/transport/http/handlers/activities"
	attendancehandler "hrportal/internal/transport/http/handlers/attendance"
	bulletinhandler "hrportal/internal/transport/http/handlers/bulletin"
	documenthandler "hrportal/internal/transport/http/handlers/documents"
	employeehandler "hrportal/internal/transport/http/handlers/employees"
	leavehandler "hrportal/internal/transport/http/handlers/leave"
	payrollhandler "hrportal/internal/transport/http/handlers/payroll"
	performancehandler "hrportal/internal/transport/http/handlers/performance"
	taskhandler "hrportal/internal/transport/http/handlers/tasks"
	usershandler "hrportal/internal/transport/http/handlers/users"
	"hrportal/internal/transport/http/middleware"
)

// App wires the whole process together: one store constructed at start and
// torn down with the process, injected into every handler.
type App struct {
	Config  config.Config
	Log     *zap.Logger
	Store   *store.Store
	Metrics *metrics.Collector
	Router  http.Handler
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(logger)

	st := store.New()
	if cfg.RunSeed {
		if err := st.Seed(ctx); err != nil {
			return nil, err
		}
	}

	collector := metrics.New()

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))
	if cfg.MetricsEnabled {
		router.Use(middleware.Metrics(collector))
	}
	router.Use(middleware.Recoverer(logger))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if cfg.MetricsEnabled {
		router.Get("/metricsz", func(w http.ResponseWriter, r *http.Request) {
			api.WriteJSON(w, http.StatusOK, collector.Snapshot())
		})
	}

	router.Route("/api", func(r chi.Router) {
		usershandler.NewHandler(st).RegisterRoutes(r)
		employeehandler.NewHandler(st).RegisterRoutes(r)
		documenthandler.NewHandler(st).RegisterRoutes(r)
		attendancehandler.NewHandler(st).RegisterRoutes(r)
		leavehandler.NewHandler(st).RegisterRoutes(r)
		payrollhandler.NewHandler(st).RegisterRoutes(r)
		performancehandler.NewHandler(st).RegisterRoutes(r)
		activityhandler.NewHandler(st).RegisterRoutes(r)
		taskhandler.NewHandler(st).RegisterRoutes(r)
		bulletinhandler.NewHandler(st).RegisterRoutes(r)
	})

	return &App{
		Config:  cfg,
		Log:     logger,
		Store:   st,
		Metrics: collector,
		Router:  router,
	}, nil
}

func (a *App) Close() {
	_ = a.Log.Sync()
}

// Run builds the app from the environment and serves until the process ends.
func Run() {
	cfg := config.Load()

	app, err := New(context.Background(), cfg)
	if err != nil {
		log.Fatalf("startup failed: %v", err)
	}
	defer app.Close()

	app.Log.Info("hr portal listening", zap.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, app.Router); err != nil {
		app.Log.Fatal("server failed", zap.Error(err))
	}
}
