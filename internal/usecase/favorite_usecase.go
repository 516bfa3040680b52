package usecase

import (
	"context"

	"holocron/internal/domain/entity"
)

// FavoriteUsecase manages the favorites relationship between users and catalog items.
type FavoriteUsecase interface {
	// AddFavorite links userID to target. The user and the target must exist and the pair must be new.
	AddFavorite(ctx context.Context, userID uint, target entity.FavoriteTarget) (*entity.Favorite, error)

	// RemoveFavorite unlinks userID from target.
	RemoveFavorite(ctx context.Context, userID uint, target entity.FavoriteTarget) error

	// ListFavoritesForUser returns the user's favorites ordered by id.
	ListFavoritesForUser(ctx context.Context, userID uint) ([]*entity.Favorite, error)

	// ListAllFavorites returns every favorite ordered by id.
	ListAllFavorites(ctx context.Context) ([]*entity.Favorite, error)
}
