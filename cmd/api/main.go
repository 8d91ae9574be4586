package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"piecework_tracker/internal/adapter/http/routes"
	"piecework_tracker/internal/adapter/persistence/repository"
	"piecework_tracker/internal/config"
	"piecework_tracker/internal/infrastructure/database"
	"piecework_tracker/internal/infrastructure/mailer"
	"piecework_tracker/internal/infrastructure/metrics"
	"piecework_tracker/internal/infrastructure/scheduler"
	"piecework_tracker/internal/infrastructure/sink"
	"piecework_tracker/internal/usecase"
	"piecework_tracker/internal/usecase/interfaces"
	"piecework_tracker/pkg/logger"

	_ "time/tzdata"
)

// @title           Piecework Tracker API
// @version         1.0
// @description     Order pricing and earnings tracking for a fabrication operator.

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		logger.Default().Fatalw("[app] failed to load configuration", "error", err)
	}

	log, err := logger.New(logger.Config{Level: cfg.Log.Level, Development: cfg.Log.Development})
	if err != nil {
		logger.Default().Fatalw("[app] failed to build logger", "error", err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kv, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Fatalw("[app] failed to open storage", "backend", cfg.Storage.Backend, "error", err)
	}
	defer closeStore()

	state := repository.NewStateRepository(kv)
	clock := usecase.SystemClock(cfg.Location)

	var orderSink interfaces.IOrderSink
	s, err := sink.NewSpreadsheetSink(cfg.Sink.URL, &http.Client{Timeout: cfg.Sink.Timeout}, log)
	if err != nil {
		log.Infow("[app] remote sink not configured", "reason", err)
	} else {
		orderSink = s
	}

	var reportMailer interfaces.IReportMailer
	m, err := mailer.NewReportMailer(mailer.Config{
		Host:     cfg.Mail.Host,
		Port:     cfg.Mail.Port,
		User:     cfg.Mail.User,
		Password: cfg.Mail.Password,
		From:     cfg.Mail.From,
		To:       cfg.Mail.To,
	})
	if err != nil {
		log.Infow("[app] report mailer not configured", "reason", err)
	} else {
		reportMailer = m
	}

	orders := usecase.NewOrderUseCase(state, clock)
	earnings := usecase.NewEarningsUseCase(orders, clock)
	reports := usecase.NewReportUseCase(orders, state, orderSink, reportMailer, cfg.Sink.Timeout, clock)
	syncUC := usecase.NewSyncUseCase(orders, orderSink, cfg.Sink.Timeout)
	notifications := usecase.NewNotificationUseCase(orders, state, cfg.Notifications.StaleAfter, clock)

	jobs := scheduler.New(cfg.Location, log)
	if err := jobs.ScheduleStaleOrderCheck(notifications, cfg.Notifications.CheckEvery); err != nil {
		log.Fatalw("[app] failed to schedule stale order check", "error", err)
	}
	jobs.Start()
	defer jobs.Stop()

	router := routes.NewRouter(routes.Dependencies{
		Orders:        orders,
		Earnings:      earnings,
		Reports:       reports,
		Sync:          syncUC,
		Notifications: notifications,
		PlanThreshold: cfg.Plan.Threshold,
		AllowOrigins:  cfg.App.AllowOrigins,
		Metrics:       metrics.New(),
		Logger:        log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infow("[app] listening", "addr", srv.Addr, "storage", cfg.Storage.Backend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("[app] failed to startup the application", "error", err)
		}
	}()

	<-ctx.Done()
	log.Infow("[app] shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("[app] graceful shutdown failed", "error", err)
	}
}

// openStore returns the key/value store selected by STORAGE_BACKEND and a
// function releasing its connection.
func openStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (interfaces.IKeyValueStore, func(), error) {
	switch cfg.Storage.Backend {
	case config.StorageDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return nil, nil, err
		}
		repo := repository.NewKeyValueDynamoRepository(ddb)
		// Local DynamoDB starts empty; real tables are provisioned outside the app.
		if os.Getenv("DYNAMODB_ENDPOINT") != "" {
			if err := database.EnsureKeyValueTable(ctx, ddb, repo.TableName()); err != nil {
				return nil, nil, err
			}
		}
		return repo, func() {}, nil
	case config.StorageMongo:
		client, db, err := database.ConnectMongo(ctx)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewKeyValueMongoRepository(db), func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.Warnw("[app] mongo disconnect failed", "error", err)
			}
		}, nil
	default:
		log.Warnw("[app] using in-memory storage; state is lost on restart")
		return repository.NewKeyValueMemoryRepository(), func() {}, nil
	}
}
