package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	confirmAppointmentHandler "github.com/m04kA/SMC-GarageService/internal/api/handlers/confirm_appointment"
	getCalendarHandler "github.com/m04kA/SMC-GarageService/internal/api/handlers/get_calendar"
	getServiceHandler "github.com/m04kA/SMC-GarageService/internal/api/handlers/get_service"
	getTimeSlotsHandler "github.com/m04kA/SMC-GarageService/internal/api/handlers/get_time_slots"
	listSellersHandler "github.com/m04kA/SMC-GarageService/internal/api/handlers/list_sellers"
	listServicesHandler "github.com/m04kA/SMC-GarageService/internal/api/handlers/list_services"
	loginHandler "github.com/m04kA/SMC-GarageService/internal/api/handlers/login"
	logoutHandler "github.com/m04kA/SMC-GarageService/internal/api/handlers/logout"
	navigateCalendarHandler "github.com/m04kA/SMC-GarageService/internal/api/handlers/navigate_calendar"
	passwordStrengthHandler "github.com/m04kA/SMC-GarageService/internal/api/handlers/password_strength"
	registerHandler "github.com/m04kA/SMC-GarageService/internal/api/handlers/register"
	selectDayHandler "github.com/m04kA/SMC-GarageService/internal/api/handlers/select_day"
	selectHourHandler "github.com/m04kA/SMC-GarageService/internal/api/handlers/select_hour"
	"github.com/m04kA/SMC-GarageService/internal/api/middleware"
	"github.com/m04kA/SMC-GarageService/internal/api/session"
	"github.com/m04kA/SMC-GarageService/internal/config"
	"github.com/m04kA/SMC-GarageService/internal/domain"
	bookingsCache "github.com/m04kA/SMC-GarageService/internal/infra/cache/bookings"
	accountRepo "github.com/m04kA/SMC-GarageService/internal/infra/storage/account"
	"github.com/m04kA/SMC-GarageService/internal/service/auth"
	"github.com/m04kA/SMC-GarageService/internal/service/calendar"
	"github.com/m04kA/SMC-GarageService/internal/service/directory"
	"github.com/m04kA/SMC-GarageService/pkg/logger"
	"github.com/m04kA/SMC-GarageService/pkg/metrics"
)

const (
	// sessionSweepInterval как часто удаляются истёкшие сессии, их календари и простаивающие лимитеры
	sessionSweepInterval = time.Minute
	// limiterIdleTTL через сколько без запросов забывается лимитер IP
	limiterIdleTTL = 10 * time.Minute
)

type expiredSessions interface {
	PurgeExpired() []string
}

type sessionCalendars interface {
	Drop(sessionID string)
}

// sweepSessions удаляет истёкшие сессии вместе с их календарями
func sweepSessions(sessions expiredSessions, calendars sessionCalendars) int {
	purged := sessions.PurgeExpired()
	for _, id := range purged {
		calendars.Drop(id)
	}
	return len(purged)
}

// nopAppointmentMetrics используется, когда метрики выключены
type nopAppointmentMetrics struct{}

func (nopAppointmentMetrics) AppointmentConfirmed() {}
func (nopAppointmentMetrics) SubmissionFailed()     {}

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(*configPath)
		},
	}
}

func runServe(configPath string) error {
	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Close()

	log.Info("Starting %s...", serviceTitle)
	log.Info("Configuration loaded from %s", configPath)

	loc, err := cfg.Calendar.LoadLocation()
	if err != nil {
		return err
	}

	hashKey, blockKey, err := cfg.Session.Keys()
	if err != nil {
		return err
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных (аккаунты нужны при любом backend)
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStartup()

	db, err := openDB(startupCtx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer db.Close()

	// Источник бронирований: PostgreSQL или внешний API, опционально через Redis
	var cacheRecorder bookingsCache.Recorder
	var appointmentMetrics confirmAppointmentHandler.AppointmentMetrics = nopAppointmentMetrics{}
	if metricsCollector != nil {
		cacheRecorder = metricsCollector
		appointmentMetrics = metricsCollector
	}

	backend, closeBackend, err := newBookingBackend(startupCtx, cfg, db, cacheRecorder, log)
	if err != nil {
		return err
	}
	defer closeBackend()

	// Инициализируем сервисы
	authSvc := auth.NewService(
		accountRepo.NewRepository(db),
		cfg.Session.TTL(),
		cfg.Session.LongTTL(),
		log,
	)
	directorySvc := directory.NewService(accountRepo.NewRepository(db), log)

	calendars := calendar.NewRegistry(func(s *domain.Session) *calendar.Calendar {
		return calendar.New(s.AccountID, backend, backend, loc, log)
	})

	cookies := session.NewCookies(cfg.Session.CookieName, hashKey, blockKey, cfg.Session.LongTTL())
	limiter := middleware.NewRateLimiter(
		cfg.RateLimit.RequestsPerMinute,
		cfg.RateLimit.Burst,
		cfg.RateLimit.TrustForwardedFor,
		log,
	)

	// Инициализируем handlers
	register := registerHandler.NewHandler(authSvc, cookies, log)
	login := loginHandler.NewHandler(authSvc, cookies, log)
	logout := logoutHandler.NewHandler(authSvc, calendars, cookies, log)
	passwordStrength := passwordStrengthHandler.NewHandler(authSvc)
	listServices := listServicesHandler.NewHandler(directorySvc)
	getService := getServiceHandler.NewHandler(directorySvc, log)
	listSellers := listSellersHandler.NewHandler(directorySvc, log)
	getCalendar := getCalendarHandler.NewHandler(calendars, log)
	navigateCalendar := navigateCalendarHandler.NewHandler(calendars, log)
	selectDay := selectDayHandler.NewHandler(calendars, log)
	selectHour := selectHourHandler.NewHandler(calendars, log)
	getTimeSlots := getTimeSlotsHandler.NewHandler(calendars, log)
	confirmAppointment := confirmAppointmentHandler.NewHandler(calendars, appointmentMetrics, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if metricsCollector != nil {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(limiter.Middleware())

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/auth/register", register.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/password-strength", passwordStrength.Handle).Methods(http.MethodPost)

	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}", getService.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sellers", listSellers.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют cookie сессии)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(cookies, authSvc, auth.ErrSessionExpired, log))

	protected.HandleFunc("/auth/logout", logout.Handle).Methods(http.MethodPost)

	// --- Календарь записи ---
	protected.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/calendar/navigate", navigateCalendar.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/calendar/select-day", selectDay.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/calendar/select-hour", selectHour.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/calendar/slots", getTimeSlots.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/calendar/confirm", confirmAppointment.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Удаление истёкших сессий и простаивающих лимитеров
	stopSweep := make(chan struct{})
	go func() {
		ticker := time.NewTicker(sessionSweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if n := sweepSessions(authSvc, calendars); n > 0 {
					log.Info("Session sweep: %d expired sessions removed", n)
				}
				limiter.Sweep(limiterIdleTTL)
			case <-stopSweep:
				return
			}
		}
	}()

	// Graceful shutdown
	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
	case err := <-serverErr:
		close(stopSweep)
		return fmt.Errorf("server failed to start: %w", err)
	}

	log.Info("Shutting down server...")
	close(stopSweep)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
