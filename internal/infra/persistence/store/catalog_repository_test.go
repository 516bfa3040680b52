package store_test

import (
	"context"
	"testing"

	"holocron/internal/domain/entity"
	"holocron/internal/domain/repository"
	"holocron/internal/errors"
	"holocron/internal/infra/persistence/store"
	"holocron/internal/infra/persistence/storetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func uintPtr(v uint) *uint { return &v }

func createFilm(t *testing.T, db *gorm.DB, title string, episode int) *entity.Film {
	t.Helper()

	film, err := store.NewFilmRepository(db).Create(context.Background(), &entity.Film{
		Title:     title,
		EpisodeID: episode,
		URL:       "https://swapi.dev/api/films/" + title,
	})
	require.NoError(t, err)

	return film
}

func createPlanet(t *testing.T, db *gorm.DB, name string) *entity.Planet {
	t.Helper()

	planet, err := store.NewPlanetRepository(db).Create(context.Background(), &entity.Planet{
		Name: name,
		URL:  "https://swapi.dev/api/planets/" + name,
	})
	require.NoError(t, err)

	return planet
}

func TestCatalogRepository_CreateAndFind(t *testing.T) {
	db := storetest.Open(t)
	ctx := context.Background()
	repo := store.NewPlanetRepository(db)

	created, err := repo.Create(ctx, &entity.Planet{
		Name:    "Tatooine",
		Climate: "arid",
		URL:     "https://swapi.dev/api/planets/1/",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "arid", created.Climate)
	assert.False(t, created.Created.IsZero())
	assert.NotNil(t, created.FilmIDs)
	assert.Empty(t, created.FilmIDs)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tatooine", found.Name)

	_, err = repo.FindByID(ctx, created.ID+100)
	assert.True(t, errors.Is(err, repository.ErrCatalogItemNotFound))
}

func TestCatalogRepository_SyncIDSequence(t *testing.T) {
	db := storetest.Open(t)
	ctx := context.Background()
	repo := store.NewFilmRepository(db)

	_, err := repo.Create(ctx, &entity.Film{ID: 6, Title: "Return of the Jedi", EpisodeID: 6, URL: "https://swapi.dev/api/films/3/"})
	require.NoError(t, err)
	require.NoError(t, repo.SyncIDSequence(ctx))

	next, err := repo.Create(ctx, &entity.Film{Title: "The Phantom Menace", EpisodeID: 1, URL: "https://swapi.dev/api/films/4/"})
	require.NoError(t, err)
	assert.Equal(t, uint(7), next.ID)
}

func TestCatalogRepository_DuplicateURL(t *testing.T) {
	db := storetest.Open(t)
	ctx := context.Background()
	repo := store.NewStarshipRepository(db)

	_, err := repo.Create(ctx, &entity.Starship{Name: "X-wing", URL: "https://swapi.dev/api/starships/12/"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &entity.Starship{Name: "Copy", URL: "https://swapi.dev/api/starships/12/"})
	assert.True(t, errors.Is(err, repository.ErrDuplicateCatalogItem))
}

func TestCatalogRepository_FilmLinks(t *testing.T) {
	db := storetest.Open(t)
	ctx := context.Background()
	hope := createFilm(t, db, "A New Hope", 4)
	empire := createFilm(t, db, "The Empire Strikes Back", 5)
	repo := store.NewVehicleRepository(db)

	vehicle, err := repo.Create(ctx, &entity.Vehicle{
		Name:       "Sand Crawler",
		Model:      "Digger Crawler",
		Passengers: "30",
		URL:        "https://swapi.dev/api/vehicles/4/",
		FilmIDs:    []uint{empire.ID, hope.ID, hope.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, []uint{hope.ID, empire.ID}, vehicle.FilmIDs)

	vehicle.FilmIDs = []uint{empire.ID}
	vehicle.Crew = "46"
	updated, err := repo.Update(ctx, vehicle)
	require.NoError(t, err)
	assert.Equal(t, []uint{empire.ID}, updated.FilmIDs)
	assert.Equal(t, "46", updated.Crew)
	assert.Equal(t, vehicle.Created.Unix(), updated.Created.Unix())

	vehicle.FilmIDs = []uint{999}
	_, err = repo.Update(ctx, vehicle)
	assert.True(t, errors.Is(err, repository.ErrInvalidReference))

	// Deleting a film drops its links everywhere.
	require.NoError(t, store.NewFilmRepository(db).Delete(ctx, empire.ID))
	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Empty(t, all[0].FilmIDs)
}

func TestCatalogRepository_HomeworldAndFilmNames(t *testing.T) {
	db := storetest.Open(t)
	ctx := context.Background()
	tatooine := createPlanet(t, db, "Tatooine")
	hope := createFilm(t, db, "A New Hope", 4)
	repo := store.NewCharacterRepository(db)

	luke, err := repo.Create(ctx, &entity.Character{
		Name:        "Luke Skywalker",
		HomeworldID: &tatooine.ID,
		FilmID:      &hope.ID,
		URL:         "https://swapi.dev/api/people/1/",
	})
	require.NoError(t, err)
	require.NotNil(t, luke.Homeworld)
	require.NotNil(t, luke.Film)
	assert.Equal(t, "Tatooine", *luke.Homeworld)
	assert.Equal(t, "A New Hope", *luke.Film)

	_, err = repo.Create(ctx, &entity.Character{
		Name:        "Nobody",
		HomeworldID: uintPtr(404),
		URL:         "https://swapi.dev/api/people/404/",
	})
	assert.True(t, errors.Is(err, repository.ErrInvalidReference))

	// Deleting the homeworld leaves the character without one.
	require.NoError(t, store.NewPlanetRepository(db).Delete(ctx, tatooine.ID))
	luke, err = repo.FindByID(ctx, luke.ID)
	require.NoError(t, err)
	assert.Nil(t, luke.HomeworldID)
	assert.Nil(t, luke.Homeworld)
	assert.Equal(t, "A New Hope", *luke.Film)
}

func TestCatalogRepository_UpdateAndDeleteMissing(t *testing.T) {
	db := storetest.Open(t)
	ctx := context.Background()
	repo := store.NewSpeciesRepository(db)

	_, err := repo.Update(ctx, &entity.Species{ID: 77, Name: "Ghost", Language: "none", URL: "u"})
	assert.True(t, errors.Is(err, repository.ErrCatalogItemNotFound))

	err = repo.Delete(ctx, 77)
	assert.True(t, errors.Is(err, repository.ErrCatalogItemNotFound))
}

func TestCatalogItemRepository(t *testing.T) {
	db := storetest.Open(t)
	ctx := context.Background()
	hope := createFilm(t, db, "A New Hope", 4)
	repo := store.NewCatalogItemRepository(db)

	exists, err := repo.ExistsCatalogItem(ctx, entity.FavoriteTarget{Kind: entity.KindFilm, ID: hope.ID})
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsCatalogItem(ctx, entity.FavoriteTarget{Kind: entity.KindPlanet, ID: hope.ID})
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = repo.ExistsCatalogItem(ctx, entity.FavoriteTarget{Kind: "droid", ID: 1})
	assert.True(t, errors.Is(err, entity.ErrInvalidFavoriteTarget))
}
