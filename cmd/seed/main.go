package main

import (
	"context"
	"flag"
	"log/slog"

	"holocron/config"
	"holocron/internal/domain/constants"
	"holocron/internal/domain/repository"
	logs "holocron/internal/infra/log"
	"holocron/internal/infra/persistence/store"
	"holocron/internal/infra/seed"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type seedFlags struct {
	bucketURL string
	prefix    string
	force     bool
}

type runSeedParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Flags     seedFlags
	Config    *config.Config
	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

func main() {
	var flags seedFlags
	flag.StringVar(&flags.bucketURL, "bucket", "", "Blob bucket URL, overrides seed.bucketUrl")
	flag.StringVar(&flags.prefix, "prefix", "", "Document key prefix, overrides seed.prefix")
	flag.BoolVar(&flags.force, "force", false, "Allow seeding a production database")
	flag.Parse()

	fx.New(
		fx.NopLogger,
		fx.Supply(flags),
		fx.Provide(
			config.New,
			logs.New,
			store.New,
			store.NewTransactionManager,
		),
		fx.Invoke(runSeed),
	).Run()
}

// runSeed loads the catalog once the store is reachable and then stops the app.
func runSeed(params runSeedParams) error {
	if params.Config.Env.Env == constants.EnvProduction && !params.Flags.force {
		return errors.New("refusing to seed a production database without -force")
	}

	bucketURL := params.Config.Seed.BucketURL
	if params.Flags.bucketURL != "" {
		bucketURL = params.Flags.bucketURL
	}
	prefix := params.Config.Seed.Prefix
	if params.Flags.prefix != "" {
		prefix = params.Flags.prefix
	}

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			bucket, err := seed.OpenBucket(ctx, bucketURL)
			if err != nil {
				return err
			}
			defer bucket.Close()

			// The start context is bounded by fx's start timeout; the load itself is not.
			summary, err := seed.NewLoader(bucket, prefix, params.TxManager, params.Logger).Load(context.WithoutCancel(ctx))
			if err != nil {
				return errors.Wrap(err, "seed catalog")
			}

			params.Logger.Info("Catalog seeded",
				slog.String("bucket", bucketURL),
				slog.Int("total", summary.Total()),
			)

			return params.Shutdown()
		},
	})

	return nil
}
