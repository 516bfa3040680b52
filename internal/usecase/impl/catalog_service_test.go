package impl

import (
	"context"
	"testing"

	"holocron/internal/domain/entity"
	domainerrors "holocron/internal/domain/errors"
	"holocron/internal/domain/repository"
	"holocron/internal/errors"
	"holocron/internal/infra/persistence/store"
	"holocron/internal/infra/persistence/storetest"
	mockRepo "holocron/internal/mocks/repository"
	"holocron/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newStoreParams(db *gorm.DB) CatalogServiceParams {
	return CatalogServiceParams{
		TxManager: store.NewTransactionManager(db),
		Logger:    newDiscardLogger(),
	}
}

func TestCatalogService_PlanetLifecycle(t *testing.T) {
	ctx := context.Background()
	db := storetest.Open(t)
	planets := NewPlanetService(newStoreParams(db), store.NewPlanetRepository(db))

	created, err := planets.Create(ctx, usecase.PlanetInput{
		Name:    ptr("Tatooine"),
		Climate: ptr("arid"),
		URL:     ptr("https://swapi.dev/api/planets/1/"),
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "arid", created.Climate)

	updated, err := planets.Update(ctx, created.ID, usecase.PlanetInput{Terrain: ptr("desert")})
	require.NoError(t, err)
	assert.Equal(t, "desert", updated.Terrain)
	assert.Equal(t, "arid", updated.Climate, "absent fields are kept")
	assert.Equal(t, "Tatooine", updated.Name)

	got, err := planets.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "desert", got.Terrain)

	all, err := planets.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, planets.Delete(ctx, created.ID))

	_, err = planets.Get(ctx, created.ID)
	require.ErrorIs(t, err, domainerrors.ErrCatalogItemNotFound)
	assert.Equal(t, "Planet not found", appErrorMessage(t, err))
}

func TestCatalogService_CreateRequiresFields(t *testing.T) {
	db := storetest.Open(t)
	vehicles := NewVehicleService(newStoreParams(db), store.NewVehicleRepository(db))

	_, err := vehicles.Create(context.Background(), usecase.VehicleInput{Name: ptr("Sand Crawler")})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "missing required fields: model, passengers, url", appErr.Details())
}

func TestCatalogService_DuplicateURL(t *testing.T) {
	ctx := context.Background()
	db := storetest.Open(t)
	films := NewFilmService(newStoreParams(db), store.NewFilmRepository(db))

	input := usecase.FilmInput{
		Title:       ptr("A New Hope"),
		EpisodeID:   ptr(4),
		ReleaseDate: ptr("1977-05-25"),
		URL:         ptr("https://swapi.dev/api/films/1/"),
	}

	film, err := films.Create(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, film.ReleaseDate)
	assert.Equal(t, "1977-05-25", film.ReleaseDate.Format(usecase.ReleaseDateLayout))

	_, err = films.Create(ctx, input)
	require.ErrorIs(t, err, domainerrors.ErrCatalogItemAlreadyExists)
}

func TestCatalogService_InvalidReference(t *testing.T) {
	db := storetest.Open(t)
	characters := NewCharacterService(newStoreParams(db), store.NewCharacterRepository(db))

	_, err := characters.Create(context.Background(), usecase.CharacterInput{
		Name:        ptr("Luke Skywalker"),
		HomeworldID: ptr(uint(42)),
		URL:         ptr("https://swapi.dev/api/people/1/"),
	})
	require.ErrorIs(t, err, domainerrors.ErrInvalidReference)
}

func TestCatalogService_UpdateMissing(t *testing.T) {
	db := storetest.Open(t)
	starships := NewStarshipService(newStoreParams(db), store.NewStarshipRepository(db))

	_, err := starships.Update(context.Background(), 404, usecase.StarshipInput{Name: ptr("Death Star")})
	require.ErrorIs(t, err, domainerrors.ErrCatalogItemNotFound)
	assert.Equal(t, "Starship not found", appErrorMessage(t, err))
}

func TestCatalogService_DeleteCascadesFavorites(t *testing.T) {
	ctx := context.Background()
	db := storetest.Open(t)
	params := newStoreParams(db)
	species := NewSpeciesService(params, store.NewSpeciesRepository(db))

	wookiee, err := species.Create(ctx, usecase.SpeciesInput{
		Name:     ptr("Wookiee"),
		Language: ptr("Shyriiwook"),
		URL:      ptr("https://swapi.dev/api/species/3/"),
	})
	require.NoError(t, err)

	user, err := store.NewUserRepository(db).CreateUser(ctx, &entity.User{
		Email: "chewie@falcon.net", Username: "chewie", PasswordHash: "x", IsActive: true,
	})
	require.NoError(t, err)

	favorites := store.NewFavoriteRepository(db)
	_, err = favorites.CreateFavorite(ctx, &entity.Favorite{
		UserID: user.ID,
		Target: entity.FavoriteTarget{Kind: entity.KindSpecies, ID: wookiee.ID},
	})
	require.NoError(t, err)

	require.NoError(t, species.Delete(ctx, wookiee.ID))

	remaining, err := favorites.FindFavoritesByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestCatalogService_DeleteMissing(t *testing.T) {
	db := storetest.Open(t)
	planets := NewPlanetService(newStoreParams(db), store.NewPlanetRepository(db))

	err := planets.Delete(context.Background(), 12)
	require.ErrorIs(t, err, domainerrors.ErrCatalogItemNotFound)
}

func TestCatalogService_ListStoreFailure(t *testing.T) {
	repo := mockRepo.NewMockCatalogRepository[entity.Planet](t)
	planets := NewPlanetService(CatalogServiceParams{
		TxManager: mockRepo.NewMockTransactionManager(t),
		Logger:    newDiscardLogger(),
	}, repo)

	ctx := context.Background()
	dbErr := domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "failed to find planets")
	repo.EXPECT().FindAll(ctx).Return(nil, dbErr)

	_, err := planets.List(ctx)
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to list planet")
	assert.False(t, errors.Is(err, repository.ErrCatalogItemNotFound))
}
