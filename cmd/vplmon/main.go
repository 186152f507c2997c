package main

import (
	"context"
	"log/slog"
	"os"

	"vplmon/config"
	"vplmon/internal/delivery"
	"vplmon/internal/delivery/api"
	apimiddleware "vplmon/internal/delivery/api/middleware"
	"vplmon/internal/delivery/api/router/handler"
	domainerrors "vplmon/internal/domain/errors"
	"vplmon/internal/domain/service"
	"vplmon/internal/errors"
	"vplmon/internal/infra/auth"
	"vplmon/internal/infra/firebase"
	"vplmon/internal/infra/gateway/email"
	"vplmon/internal/infra/gateway/sms"
	logs "vplmon/internal/infra/log"
	"vplmon/internal/infra/mqtt"
	"vplmon/internal/infra/persistence/firestore"
	"vplmon/internal/infra/persistence/postgres"
	"vplmon/internal/infra/pubsub"
	"vplmon/internal/usecase"
	"vplmon/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

type sessionParams struct {
	fx.In
	fx.Lifecycle

	Logger      *slog.Logger
	Transport   service.Transport
	Monitor     usecase.MonitorUsecase
	Preferences usecase.PreferenceUsecase
	Fanout      usecase.AlertFanoutUsecase
	Terminal    usecase.TerminalUsecase
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startSession,
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
		firebase.NewFirestoreClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewPreferenceRepository,
			postgres.NewTransactionManager,
			firestore.NewAuditLogRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			mqtt.NewTransport,
			sms.NewHTTPGateway,
			email.NewEmailJSGateway,
			pubsub.NewEventPublisher,
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewClassifier,
			impl.NewTerminalService,
			impl.NewNoticeService,
			impl.NewPreferenceService,
			impl.NewFanoutService,
			impl.NewMonitorService,
			impl.NewAuthService,
			impl.NewLogMailService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
			apimiddleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewHealthHandler,
			handler.NewAuthHandler,
			handler.NewMonitorHandler,
			handler.NewLogHandler,
			handler.NewPreferenceHandler,
			handler.NewNoticeHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// startSession loads preferences, starts the monitor loop and connects to the broker.
// A broker that is down at startup is retried in the background; only a malformed
// broker URL aborts startup.
func startSession(params sessionParams) {
	runCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if _, err := params.Preferences.Load(ctx); err != nil {
				params.Logger.Warn("Failed to load notification preferences, using defaults", slog.Any("error", err))
			}

			go func() {
				defer close(done)

				if err := params.Monitor.Run(runCtx); err != nil {
					params.Logger.Error("Monitor session stopped", slog.Any("error", err))
				}
			}()

			if err := params.Transport.Connect(ctx); err != nil {
				if errors.Is(err, domainerrors.ErrInvalidBrokerURL) {
					cancel()

					return err
				}
				params.Logger.Warn("MQTT broker unavailable at startup", slog.Any("error", err))
			}

			return nil
		},
		OnStop: func(ctx context.Context) error {
			if err := params.Transport.Close(); err != nil {
				params.Logger.Warn("Failed to close MQTT transport", slog.Any("error", err))
			}

			select {
			case <-done:
			case <-ctx.Done():
			}
			cancel()

			params.Fanout.Wait()

			return params.Terminal.Close(ctx)
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
