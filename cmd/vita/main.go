package main

import (
	"context"
	"log/slog"
	"os"

	"vita/config"
	"vita/internal/delivery"
	"vita/internal/delivery/http"
	"vita/internal/delivery/http/middleware"
	"vita/internal/delivery/http/router/handler"
	"vita/internal/delivery/http/session"
	"vita/internal/domain/service"
	"vita/internal/infra/ai"
	"vita/internal/infra/auth"
	logs "vita/internal/infra/log"
	"vita/internal/infra/persistence/postgres"
	"vita/internal/usecase/impl"

	"go.uber.org/fx"
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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewHealthProfileRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewMealLogRepository,
			postgres.NewWorkoutLogRepository,
			postgres.NewFeedbackRepository,
			postgres.NewSuggestionRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newChatCompletionService,
			session.NewIssuer,
		),
	)
}

// newChatCompletionService wraps the AI client constructor so Fx sees a
// fixed-arity provider.
func newChatCompletionService(cfg *config.Config) (service.ChatCompletionService, error) {
	return ai.NewClient(cfg)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewProfileService,
			impl.NewTrackingService,
			impl.NewAIService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewIdentityMiddleware,
			middleware.NewAuthGateMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewTrackingHandler,
			handler.NewAIHandler,
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
