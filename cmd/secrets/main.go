package main

import (
	"context"
	"log/slog"
	"os"

	"secrets/config"
	"secrets/internal/delivery"
	"secrets/internal/delivery/http"
	"secrets/internal/delivery/http/middleware"
	"secrets/internal/delivery/http/router/handler"
	"secrets/internal/delivery/worker"
	"secrets/internal/domain/repository"
	"secrets/internal/infra/auth"
	"secrets/internal/infra/auth/google"
	logs "secrets/internal/infra/log"
	"secrets/internal/infra/persistence/postgres"
	redisstore "secrets/internal/infra/persistence/redis"
	"secrets/internal/infra/persistence/retry"
	"secrets/internal/usecase/impl"

	"github.com/pkg/errors"
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
		retry.NewPolicy,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewTransactionManager,
			newSessionRepository,
		),
	)
}

type sessionStoreParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB
	Policy *retry.Policy
}

// newSessionRepository selects the session store named by session.store.
// The Redis client is only created when Redis is selected.
func newSessionRepository(params sessionStoreParams) (repository.SessionRepository, error) {
	switch params.Config.Session.Store {
	case config.SessionStoreRedis:
		client, err := redisstore.NewClient(redisstore.ClientParams{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to create Redis session store")
		}

		return redisstore.NewSessionRepository(client, params.Policy), nil
	case config.SessionStorePostgres:
		return postgres.NewSessionRepository(params.DB, params.Policy), nil
	default:
		return nil, errors.Errorf("unknown session store: %s", params.Config.Session.Store)
	}
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewCookieSigner,
			google.NewOAuthService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewSessionService,
			impl.NewSecretService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPageHandler,
			handler.NewAuthHandler,
			handler.NewSecretHandler,
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
				worker.NewSessionSweeper,
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
