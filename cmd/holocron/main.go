package main

import (
	"context"
	"log/slog"
	"os"

	"holocron/config"
	"holocron/internal/delivery"
	"holocron/internal/delivery/api"
	"holocron/internal/delivery/api/router/handler"
	"holocron/internal/infra/auth"
	logs "holocron/internal/infra/log"
	"holocron/internal/infra/persistence/migration"
	"holocron/internal/infra/persistence/store"
	"holocron/internal/infra/pubsub"
	"holocron/internal/usecase/impl"

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
		injectHandler(),
		fx.Invoke(
			migrateOnStart,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		store.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			store.NewUserRepository,
			store.NewFavoriteRepository,
			store.NewPlanetRepository,
			store.NewFilmRepository,
			store.NewStarshipRepository,
			store.NewVehicleRepository,
			store.NewSpeciesRepository,
			store.NewCharacterRepository,
			store.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
		),
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewFavoriteService,
			impl.NewPlanetService,
			impl.NewFilmService,
			impl.NewStarshipService,
			impl.NewVehicleService,
			impl.NewSpeciesService,
			impl.NewCharacterService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewFavoriteHandler,
			handler.NewPlanetHandler,
			handler.NewFilmHandler,
			handler.NewStarshipHandler,
			handler.NewVehicleHandler,
			handler.NewSpeciesHandler,
			handler.NewCharacterHandler,
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

// migrateOnStart upgrades the schema to head once the database answers, when database.autoMigrate is set.
func migrateOnStart(lc fx.Lifecycle, cfg *config.Config, db *gorm.DB, logger *slog.Logger) error {
	if cfg.Database == nil || !cfg.Database.AutoMigrate {
		return nil
	}

	migrator, err := migration.New(db, logger)
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			applied, err := migrator.Upgrade(ctx, migration.Head)
			if err != nil {
				return err
			}
			logger.Info("Schema is up to date", slog.Int("applied", len(applied)))

			return nil
		},
	})

	return nil
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
