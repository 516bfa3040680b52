package store_test

import (
	"context"
	"testing"
	"time"

	"holocron/internal/domain/entity"
	"holocron/internal/domain/repository"
	"holocron/internal/errors"
	"holocron/internal/infra/persistence/store"
	"holocron/internal/infra/persistence/storetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createUser(t *testing.T, db *gorm.DB, username string) *entity.User {
	t.Helper()

	user, err := store.NewUserRepository(db).CreateUser(context.Background(), &entity.User{
		Email:        username + "@rebellion.org",
		Username:     username,
		PasswordHash: "hash",
		IsActive:     true,
	})
	require.NoError(t, err)

	return user
}

func TestFavoriteRepository_Lifecycle(t *testing.T) {
	db := storetest.Open(t)
	ctx := context.Background()
	luke := createUser(t, db, "luke")
	tatooine := createPlanet(t, db, "Tatooine")
	hope := createFilm(t, db, "A New Hope", 4)
	repo := store.NewFavoriteRepository(db)

	planetTarget := entity.FavoriteTarget{Kind: entity.KindPlanet, ID: tatooine.ID}
	filmTarget := entity.FavoriteTarget{Kind: entity.KindFilm, ID: hope.ID}

	first, err := repo.CreateFavorite(ctx, &entity.Favorite{UserID: luke.ID, Target: planetTarget})
	require.NoError(t, err)
	assert.Equal(t, planetTarget, first.Target)
	assert.Equal(t, "Tatooine", first.TargetName)
	assert.False(t, first.CreatedAt.IsZero())

	_, err = repo.CreateFavorite(ctx, &entity.Favorite{UserID: luke.ID, Target: filmTarget})
	require.NoError(t, err)

	_, err = repo.CreateFavorite(ctx, &entity.Favorite{UserID: luke.ID, Target: planetTarget})
	assert.True(t, errors.Is(err, repository.ErrDuplicateFavorite))

	favorites, err := repo.FindFavoritesByUser(ctx, luke.ID)
	require.NoError(t, err)
	require.Len(t, favorites, 2)
	assert.Equal(t, "Tatooine", favorites[0].TargetName)
	assert.Equal(t, "A New Hope", favorites[1].TargetName)
	assert.Less(t, favorites[0].ID, favorites[1].ID)

	found, err := repo.FindFavorite(ctx, luke.ID, filmTarget)
	require.NoError(t, err)
	assert.Equal(t, favorites[1].ID, found.ID)

	require.NoError(t, repo.DeleteFavorite(ctx, luke.ID, planetTarget))
	err = repo.DeleteFavorite(ctx, luke.ID, planetTarget)
	assert.True(t, errors.Is(err, repository.ErrFavoriteNotFound))

	_, err = repo.FindFavorite(ctx, luke.ID, planetTarget)
	assert.True(t, errors.Is(err, repository.ErrFavoriteNotFound))
}

func TestFavoriteRepository_CreateFavorite_KeepsCreatedAt(t *testing.T) {
	db := storetest.Open(t)
	ctx := context.Background()
	luke := createUser(t, db, "luke")
	tatooine := createPlanet(t, db, "Tatooine")
	repo := store.NewFavoriteRepository(db)

	addedAt := time.Date(2024, time.May, 4, 12, 0, 0, 0, time.UTC)
	created, err := repo.CreateFavorite(ctx, &entity.Favorite{
		UserID:    luke.ID,
		Target:    entity.FavoriteTarget{Kind: entity.KindPlanet, ID: tatooine.ID},
		CreatedAt: addedAt,
	})
	require.NoError(t, err)
	assert.True(t, addedAt.Equal(created.CreatedAt), "got %s", created.CreatedAt)

	favorites, err := repo.FindFavoritesByUser(ctx, luke.ID)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.True(t, addedAt.Equal(favorites[0].CreatedAt))
}

func TestFavoriteRepository_InvalidReferences(t *testing.T) {
	db := storetest.Open(t)
	ctx := context.Background()
	luke := createUser(t, db, "luke")
	repo := store.NewFavoriteRepository(db)

	_, err := repo.CreateFavorite(ctx, &entity.Favorite{
		UserID: luke.ID,
		Target: entity.FavoriteTarget{Kind: entity.KindStarship, ID: 9},
	})
	assert.True(t, errors.Is(err, repository.ErrInvalidReference))

	_, err = repo.CreateFavorite(ctx, &entity.Favorite{
		UserID: luke.ID,
		Target: entity.FavoriteTarget{Kind: entity.KindStarship},
	})
	assert.True(t, errors.Is(err, entity.ErrInvalidFavoriteTarget))
}

func TestFavoriteRepository_BulkDeletes(t *testing.T) {
	db := storetest.Open(t)
	ctx := context.Background()
	luke := createUser(t, db, "luke")
	leia := createUser(t, db, "leia")
	tatooine := createPlanet(t, db, "Tatooine")
	alderaan := createPlanet(t, db, "Alderaan")
	repo := store.NewFavoriteRepository(db)

	for _, f := range []*entity.Favorite{
		{UserID: luke.ID, Target: entity.FavoriteTarget{Kind: entity.KindPlanet, ID: tatooine.ID}},
		{UserID: leia.ID, Target: entity.FavoriteTarget{Kind: entity.KindPlanet, ID: tatooine.ID}},
		{UserID: leia.ID, Target: entity.FavoriteTarget{Kind: entity.KindPlanet, ID: alderaan.ID}},
	} {
		_, err := repo.CreateFavorite(ctx, f)
		require.NoError(t, err)
	}

	removed, err := repo.DeleteFavoritesByTarget(ctx, entity.FavoriteTarget{Kind: entity.KindPlanet, ID: tatooine.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	removed, err = repo.DeleteFavoritesByUser(ctx, leia.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	all, err := repo.FindAllFavorites(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestUserRepository(t *testing.T) {
	db := storetest.Open(t)
	ctx := context.Background()
	repo := store.NewUserRepository(db)

	luke := createUser(t, db, "luke")

	_, err := repo.CreateUser(ctx, &entity.User{Email: "luke@rebellion.org", Username: "other", PasswordHash: "h"})
	assert.True(t, errors.Is(err, repository.ErrDuplicateUser))

	luke.IsActive = false
	luke.LastName = "Skywalker"
	updated, err := repo.UpdateUser(ctx, luke)
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "Skywalker", updated.LastName)
	assert.Equal(t, "hash", updated.PasswordHash)

	users, err := repo.FindAllUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)

	require.NoError(t, repo.DeleteUser(ctx, luke.ID))
	_, err = repo.FindUserByID(ctx, luke.ID)
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))
	assert.True(t, errors.Is(repo.DeleteUser(ctx, luke.ID), repository.ErrUserNotFound))
}

func TestTransactionManager_RollsBack(t *testing.T) {
	db := storetest.Open(t)
	ctx := context.Background()
	txManager := store.NewTransactionManager(db)
	boom := errors.New("boom")

	err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		_, err := factory.NewUserRepository().CreateUser(ctx, &entity.User{
			Email: "han@falcon.net", Username: "han", PasswordHash: "h", IsActive: true,
		})
		require.NoError(t, err)

		return boom
	})
	assert.True(t, errors.Is(err, boom))

	users, err := store.NewUserRepository(db).FindAllUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}
