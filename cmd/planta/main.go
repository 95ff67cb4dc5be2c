package main

import (
	"context"
	"log/slog"
	"os"

	"planta/config"
	"planta/internal/delivery"
	"planta/internal/delivery/http"
	"planta/internal/delivery/http/middleware"
	"planta/internal/delivery/http/router/handler"
	"planta/internal/infra/auth"
	logs "planta/internal/infra/log"
	"planta/internal/infra/persistence/postgres"
	"planta/internal/infra/storage"
	"planta/internal/usecase/impl"

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
			postgres.NewPlantRepository,
			postgres.NewOrderRepository,
			postgres.NewScheduleRepository,
			postgres.NewSuggestionRepository,
			postgres.NewUserRepository,
			postgres.NewArticleRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			storage.NewLocalStorage,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewPlantService,
			impl.NewOrderService,
			impl.NewScheduleService,
			impl.NewSuggestionService,
			impl.NewUserService,
			impl.NewArticleService,
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
			handler.NewPlantHandler,
			handler.NewOrderHandler,
			handler.NewScheduleHandler,
			handler.NewSuggestionHandler,
			handler.NewUserHandler,
			handler.NewArticleHandler,
			handler.NewUploadHandler,
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
