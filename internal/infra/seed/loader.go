// Package seed loads catalog JSON documents from a blob bucket into the store.
package seed

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"holocron/internal/domain/entity"
	"holocron/internal/domain/repository"
	"holocron/internal/errors"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

// Document keys, relative to the loader prefix.
const (
	FilmsDocument      = "films.json"
	PlanetsDocument    = "planets.json"
	StarshipsDocument  = "starships.json"
	VehiclesDocument   = "vehicles.json"
	SpeciesDocument    = "species.json"
	CharactersDocument = "characters.json"
)

// Summary counts the rows inserted per kind. Kinds whose document was missing are absent.
type Summary map[entity.CatalogKind]int

// Total is the number of rows inserted across all kinds.
func (s Summary) Total() int {
	total := 0
	for _, n := range s {
		total += n
	}

	return total
}

// Loader reads the catalog documents of one bucket prefix.
type Loader struct {
	bucket    *blob.Bucket
	prefix    string
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// OpenBucket opens any gocloud.dev blob URL, e.g. file:///var/lib/holocron or mem://.
func OpenBucket(ctx context.Context, url string) (*blob.Bucket, error) {
	if strings.TrimSpace(url) == "" {
		return nil, errors.New("seed bucket url is required")
	}

	bucket, err := blob.OpenBucket(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", url)
	}

	return bucket, nil
}

// NewLoader creates a loader. The caller owns the bucket.
func NewLoader(bucket *blob.Bucket, prefix string, txManager repository.TransactionManager, logger *slog.Logger) *Loader {
	return &Loader{
		bucket:    bucket,
		prefix:    prefix,
		txManager: txManager,
		logger:    logger,
	}
}

// Load inserts every present document in one transaction.
// Films go first since every other kind may link to them; planets precede their inhabitants.
func (l *Loader) Load(ctx context.Context) (Summary, error) {
	summary := Summary{}

	err := l.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		steps := []func() error{
			func() error { return load(ctx, l, entity.KindFilm, FilmsDocument, repos.NewFilmRepository(), summary) },
			func() error {
				return load(ctx, l, entity.KindPlanet, PlanetsDocument, repos.NewPlanetRepository(), summary)
			},
			func() error {
				return load(ctx, l, entity.KindStarship, StarshipsDocument, repos.NewStarshipRepository(), summary)
			},
			func() error {
				return load(ctx, l, entity.KindVehicle, VehiclesDocument, repos.NewVehicleRepository(), summary)
			},
			func() error {
				return load(ctx, l, entity.KindSpecies, SpeciesDocument, repos.NewSpeciesRepository(), summary)
			},
			func() error {
				return load(ctx, l, entity.KindCharacter, CharactersDocument, repos.NewCharacterRepository(), summary)
			},
		}

		for _, step := range steps {
			if err := step(); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return summary, nil
}

func load[E repository.CatalogEntity](
	ctx context.Context,
	l *Loader,
	kind entity.CatalogKind,
	document string,
	repo repository.CatalogRepository[E],
	summary Summary,
) error {
	key := l.prefix + document

	data, err := l.bucket.ReadAll(ctx, key)
	if gcerrors.Code(err) == gcerrors.NotFound {
		l.logger.Info("Seed document not found, skipping", slog.String("key", key))

		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "read %s", key)
	}

	var items []*E
	if err := json.Unmarshal(data, &items); err != nil {
		return errors.Wrapf(err, "decode %s", key)
	}

	for i, item := range items {
		if _, err := repo.Create(ctx, item); err != nil {
			return errors.Wrapf(err, "insert %s #%d from %s", kind, i, key)
		}
	}

	// Seed rows carry their ids, which leaves a Postgres sequence behind them.
	if err := repo.SyncIDSequence(ctx); err != nil {
		return errors.Wrapf(err, "sync %s ids after %s", kind, key)
	}

	summary[kind] = len(items)
	l.logger.Info("Seed document loaded",
		slog.String("key", key),
		slog.Int("rows", len(items)),
	)

	return nil
}
