package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"dosetrack/config"
	"dosetrack/internal/delivery"
	"dosetrack/internal/delivery/http"
	"dosetrack/internal/delivery/http/middleware"
	"dosetrack/internal/delivery/http/router/handler"
	"dosetrack/internal/delivery/scheduler"
	"dosetrack/internal/domain/repository"
	"dosetrack/internal/domain/service"
	"dosetrack/internal/infra/auth"
	logs "dosetrack/internal/infra/log"
	"dosetrack/internal/infra/notification"
	"dosetrack/internal/infra/persistence/postgres"
	"dosetrack/internal/infra/persistence/redisstore"
	"dosetrack/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		newLocation,
	)
}

// newLocation resolves the fixed service time zone once so every
// component shares the same calendar-day math.
func newLocation(cfg *config.Config) (*time.Location, error) {
	return cfg.Location()
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewMedicationRepository,
			postgres.NewDoseRepository,
			newReminderReceiptRepository,
		),
	)
}

type receiptRepoParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB
}

// newReminderReceiptRepository picks the receipt store: Redis with TTL
// expiry when enabled, otherwise the Postgres receipt table.
func newReminderReceiptRepository(params receiptRepoParams) (repository.ReminderReceiptRepository, error) {
	if params.Config.Redis == nil || !params.Config.Redis.Enabled {
		return postgres.NewReminderReceiptRepository(params.DB), nil
	}

	client, err := redisstore.New(redisstore.Params{
		Lifecycle: params.Lifecycle,
		Config:    params.Config,
		Logger:    params.Logger,
	})
	if err != nil {
		return nil, err
	}

	return redisstore.NewReminderReceiptRepository(client, params.Config.Redis.ReceiptTTL), nil
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			newNotificationService,
		),
	)
}

// newNotificationService creates the push sender. Without Firebase
// credentials reminders are logged instead of delivered.
func newNotificationService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.NotificationService, error) {
	if cfg.Firebase == nil || cfg.Firebase.CredentialsPath == "" {
		return notification.NewLogService(logger), nil
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase service: %w", err)
	}

	return svc, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewMedicationService,
			impl.NewDoseService,
			impl.NewReminderService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewMedicationHandler,
			handler.NewDoseHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				scheduler.NewScheduler,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
