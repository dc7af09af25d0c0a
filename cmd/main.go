package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	_ "modernc.org/sqlite"

	"github.com/m04kA/SMC-StayBookings/internal/api"
	"github.com/m04kA/SMC-StayBookings/internal/config"
	bookingRepo "github.com/m04kA/SMC-StayBookings/internal/infra/storage/booking"
	classifierClient "github.com/m04kA/SMC-StayBookings/internal/integrations/classifier"
	bookingsService "github.com/m04kA/SMC-StayBookings/internal/service/bookings"
	"github.com/m04kA/SMC-StayBookings/pkg/dbmetrics"
	"github.com/m04kA/SMC-StayBookings/pkg/logger"
	"github.com/m04kA/SMC-StayBookings/pkg/metrics"
	"github.com/m04kA/SMC-StayBookings/pkg/sqlbuilder"
)

// bookingStorage репозиторий с созданием схемы при старте
type bookingStorage interface {
	bookingsService.BookingRepository
	EnsureSchema(ctx context.Context) error
}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-StayBookings...")
	log.Info("Configuration loaded (storage driver=%s)", cfg.Database.Driver)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к хранилищу
	storage, closeStorage, err := openStorage(cfg, metricsCollector, stopMetricsCh, log)
	if err != nil {
		log.Fatal("Failed to open storage: %v", err)
	}
	defer closeStorage()

	schemaCtx, cancelSchema := context.WithTimeout(context.Background(), 30*time.Second)
	if err := storage.EnsureSchema(schemaCtx); err != nil {
		cancelSchema()
		// Fatal завершает процесс без отложенных вызовов
		closeStorage()
		log.Fatal("Failed to prepare storage schema: %v", err)
	}
	cancelSchema()
	log.Info("Storage schema is ready")

	// Инициализируем интеграционных клиентов
	classifier := classifierClient.NewClient(
		cfg.Classifier.URL,
		cfg.Classifier.Token,
		time.Duration(cfg.Classifier.Timeout)*time.Second,
		log,
	)
	log.Info("Classifier client initialized (url=%s timeout=%ds)", cfg.Classifier.URL, cfg.Classifier.Timeout)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(storage, log)

	// Настраиваем роутер
	opts := api.Options{}
	if cfg.Metrics.Enabled {
		opts.Metrics = metricsCollector
		opts.MetricsPath = cfg.Metrics.Path
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}
	handler := api.NewRouter(bookingSvc, classifier, log, opts)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

// openStorage подключается к хранилищу, выбранному в конфигурации.
// Возвращаемая функция закрывает соединение.
func openStorage(
	cfg *config.Config,
	metricsCollector *metrics.Metrics,
	stopMetricsCh <-chan struct{},
	log *logger.Logger,
) (bookingStorage, func(), error) {
	switch cfg.Database.Driver {
	case config.DriverMongo:
		return openMongo(cfg, log)
	case config.DriverSQLite:
		return openSQL(cfg, "sqlite", cfg.Database.Path, sqlbuilder.DialectSQLite, metricsCollector, stopMetricsCh, log)
	default:
		return openSQL(cfg, "postgres", cfg.Database.DSN(), sqlbuilder.DialectPostgres, metricsCollector, stopMetricsCh, log)
	}
}

func openSQL(
	cfg *config.Config,
	driverName, dsn, dialect string,
	metricsCollector *metrics.Metrics,
	stopMetricsCh <-chan struct{},
	log *logger.Logger,
) (bookingStorage, func(), error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", driverName, err)
	}
	closeDB := func() { _ = db.Close() }

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)
	if dialect == sqlbuilder.DialectSQLite {
		// SQLite допускает одного писателя
		db.SetMaxOpenConns(1)
	}

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		closeDB()
		return nil, nil, fmt.Errorf("ping %s: %w", driverName, err)
	}

	var executor bookingRepo.DBExecutor = db
	if metricsCollector != nil {
		executor = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	repo, err := bookingRepo.NewRepository(executor, dialect)
	if err != nil {
		closeDB()
		return nil, nil, err
	}

	if dialect == sqlbuilder.DialectSQLite {
		log.Info("Successfully connected to sqlite (path=%s)", cfg.Database.Path)
	} else {
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	}

	return repo, closeDB, nil
}

func openMongo(cfg *config.Config, log *logger.Logger) (bookingStorage, func(), error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(cfg.Database.URI).
		SetMaxPoolSize(uint64(cfg.Database.MaxOpenConns)))
	if err != nil {
		return nil, nil, fmt.Errorf("connect mongo: %w", err)
	}
	disconnect := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(ctx)
	}

	if err := client.Ping(ctx, nil); err != nil {
		disconnect()
		return nil, nil, fmt.Errorf("ping mongo: %w", err)
	}

	collection := client.Database(cfg.Database.DBName).Collection(cfg.Database.Collection)
	log.Info("Successfully connected to mongo (db=%s, collection=%s)", cfg.Database.DBName, cfg.Database.Collection)

	return bookingRepo.NewMongoRepository(collection), disconnect, nil
}
