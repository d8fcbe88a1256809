package main

import (
	"context"
	"log/slog"
	"os"

	"portfolio/config"
	"portfolio/internal/delivery"
	"portfolio/internal/delivery/http"
	"portfolio/internal/delivery/http/middleware"
	"portfolio/internal/delivery/http/router/handler"
	"portfolio/internal/infra/auth"
	logs "portfolio/internal/infra/log"
	"portfolio/internal/infra/persistence/postgres"
	"portfolio/internal/usecase/impl"

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
			postgres.NewTransactionManager,
			postgres.NewAboutRepository,
			postgres.NewContactRepository,
			postgres.NewExperienceRepository,
			postgres.NewProjectRepository,
			postgres.NewSkillRepository,
			postgres.NewToolRepository,
			postgres.NewTrainingRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewAboutService,
			impl.NewContactService,
			impl.NewExperienceService,
			impl.NewProjectService,
			impl.NewSkillService,
			impl.NewToolService,
			impl.NewTrainingService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewAboutHandler,
			handler.NewContactHandler,
			handler.NewExperienceHandler,
			handler.NewProjectHandler,
			handler.NewSkillHandler,
			handler.NewToolHandler,
			handler.NewTrainingHandler,
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
