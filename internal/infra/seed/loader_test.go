package seed_test

import (
	"context"
	"testing"

	"holocron/internal/domain/entity"
	"holocron/internal/domain/repository"
	"holocron/internal/infra/persistence/store"
	"holocron/internal/infra/persistence/storetest"
	"holocron/internal/infra/seed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"
)

const prefix = "catalog/"

func writeDocuments(t *testing.T, bucket *blob.Bucket, docs map[string]string) {
	t.Helper()

	for name, body := range docs {
		require.NoError(t, bucket.WriteAll(context.Background(), prefix+name, []byte(body), nil))
	}
}

func TestLoader_Load(t *testing.T) {
	ctx := context.Background()
	db := storetest.Open(t)

	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	writeDocuments(t, bucket, map[string]string{
		seed.FilmsDocument: `[{"id": 1, "title": "A New Hope", "episode_id": 4, "url": "https://swapi.dev/api/films/1/"}]`,
		seed.PlanetsDocument: `[
			{"id": 1, "name": "Tatooine", "url": "https://swapi.dev/api/planets/1/", "film_ids": [1]},
			{"id": 2, "name": "Alderaan", "url": "https://swapi.dev/api/planets/2/"}
		]`,
		seed.CharactersDocument: `[{"id": 1, "name": "Luke Skywalker", "homeworld_id": 1, "film_id": 1, "url": "https://swapi.dev/api/people/1/"}]`,
	})

	loader := seed.NewLoader(bucket, prefix, store.NewTransactionManager(db), storetest.DiscardLogger())
	summary, err := loader.Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, seed.Summary{
		entity.KindFilm:      1,
		entity.KindPlanet:    2,
		entity.KindCharacter: 1,
	}, summary)
	assert.Equal(t, 4, summary.Total())

	luke, err := store.NewCharacterRepository(db).FindByID(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, luke.Homeworld)
	assert.Equal(t, "Tatooine", *luke.Homeworld)
	require.NotNil(t, luke.Film)
	assert.Equal(t, "A New Hope", *luke.Film)

	tatooine, err := store.NewPlanetRepository(db).FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []uint{1}, tatooine.FilmIDs)

	// ids generated after the seed continue past the seeded ones
	hoth, err := store.NewPlanetRepository(db).Create(ctx, &entity.Planet{Name: "Hoth", URL: "https://swapi.dev/api/planets/4/"})
	require.NoError(t, err)
	assert.Equal(t, uint(3), hoth.ID)
}

func TestLoader_RollsBackOnBadReference(t *testing.T) {
	ctx := context.Background()
	db := storetest.Open(t)

	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	writeDocuments(t, bucket, map[string]string{
		seed.PlanetsDocument: `[{"id": 1, "name": "Tatooine", "url": "https://swapi.dev/api/planets/1/"}]`,
		seed.SpeciesDocument: `[{"id": 1, "name": "Wookie", "homeworld_id": 14, "url": "https://swapi.dev/api/species/3/"}]`,
	})

	loader := seed.NewLoader(bucket, prefix, store.NewTransactionManager(db), storetest.DiscardLogger())
	_, err := loader.Load(ctx)
	require.ErrorIs(t, err, repository.ErrInvalidReference)

	planets, err := store.NewPlanetRepository(db).FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, planets)
}

func TestLoader_MalformedDocument(t *testing.T) {
	db := storetest.Open(t)

	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	writeDocuments(t, bucket, map[string]string{seed.VehiclesDocument: `{"name": "not a list"}`})

	loader := seed.NewLoader(bucket, prefix, store.NewTransactionManager(db), storetest.DiscardLogger())
	_, err := loader.Load(context.Background())
	assert.ErrorContains(t, err, "decode catalog/vehicles.json")
}

func TestLoader_EmptyBucket(t *testing.T) {
	db := storetest.Open(t)

	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	loader := seed.NewLoader(bucket, prefix, store.NewTransactionManager(db), storetest.DiscardLogger())
	summary, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, summary)
}

func TestOpenBucket(t *testing.T) {
	_, err := seed.OpenBucket(context.Background(), "")
	assert.Error(t, err)

	bucket, err := seed.OpenBucket(context.Background(), "mem://")
	require.NoError(t, err)
	assert.NoError(t, bucket.Close())
}
