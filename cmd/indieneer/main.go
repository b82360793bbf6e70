package main

import (
	"context"
	"log/slog"
	"os"

	"indieneer/config"
	"indieneer/internal/delivery"
	deliveryhttp "indieneer/internal/delivery/http"
	"indieneer/internal/delivery/http/middleware"
	"indieneer/internal/delivery/http/router/handler"
	"indieneer/internal/domain/entity"
	"indieneer/internal/infra/auth"
	"indieneer/internal/infra/identity/firebase"
	logs "indieneer/internal/infra/log"
	"indieneer/internal/infra/persistence/mongo"
	"indieneer/internal/infra/pubsub"
	"indieneer/internal/usecase/impl"

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
		mongo.New,
		mongo.NewDatabase,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			mongo.NewTransactionManager,
			mongo.NewPinger,
			mongo.NewProfileRepository,
			mongo.NewServiceProfileRepository,
			mongo.NewBackgroundJobRepository,
			mongo.NewFeaturedItemRepository,
			mongo.NewTagRepository,
			mongo.NewPlatformRepository,
			mongo.NewProductRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			firebase.New,
			firebase.NewIdentityProvider,
			firebase.NewJWKSFetcher,
			auth.NewKeySetCache,
			auth.NewVerifier,
			auth.NewClientSecretService,
			entity.NewJobRegistry,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewHealthService,
			impl.NewProfileService,
			impl.NewLoginService,
			impl.NewBackgroundJobService,
			impl.NewFeaturedListService,
			impl.NewCatalogService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewRateLimitMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewHealthHandler,
			handler.NewProfileHandler,
			handler.NewLoginHandler,
			handler.NewBackgroundJobHandler,
			handler.NewCatalogHandler,
			handler.NewFeaturedListHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				deliveryhttp.NewServer,
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
