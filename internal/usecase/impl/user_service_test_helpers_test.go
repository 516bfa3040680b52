package impl

import (
	"context"
	"io"
	"log/slog"

	"holocron/internal/domain/repository"
	mockRepo "holocron/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ptr[T any](v T) *T {
	return &v
}

// expectTransaction runs every Execute callback against factory, which hands out the given repositories.
func expectTransaction(
	txManager *mockRepo.MockTransactionManager,
	factory *mockRepo.MockRepositoryFactory,
	userRepo repository.UserRepository,
	favoriteRepo repository.FavoriteRepository,
	catalogItemRepo repository.CatalogItemRepository,
) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	if userRepo != nil {
		factory.EXPECT().NewUserRepository().Return(userRepo).Maybe()
	}
	if favoriteRepo != nil {
		factory.EXPECT().NewFavoriteRepository().Return(favoriteRepo).Maybe()
	}
	if catalogItemRepo != nil {
		factory.EXPECT().NewCatalogItemRepository().Return(catalogItemRepo).Maybe()
	}
}
