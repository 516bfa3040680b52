package repository

import (
	"context"

	"holocron/internal/domain/entity"
	"holocron/internal/errors"
)

var (
	// ErrFavoriteNotFound is returned when the user has not favorited the target.
	ErrFavoriteNotFound = errors.New("favorite not found")

	// ErrDuplicateFavorite is returned when the (user, target) pair already exists.
	ErrDuplicateFavorite = errors.New("favorite already exists")
)

// FavoriteRepository persists favoritos rows. Returned favorites carry the target's display name.
type FavoriteRepository interface {
	CreateFavorite(ctx context.Context, favorite *entity.Favorite) (*entity.Favorite, error)

	// FindFavorite returns the favorite linking userID to target.
	FindFavorite(ctx context.Context, userID uint, target entity.FavoriteTarget) (*entity.Favorite, error)

	// FindFavoritesByUser returns the user's favorites in insertion order.
	FindFavoritesByUser(ctx context.Context, userID uint) ([]*entity.Favorite, error)

	// FindAllFavorites returns every favorite in insertion order.
	FindAllFavorites(ctx context.Context) ([]*entity.Favorite, error)

	// DeleteFavorite removes the link and returns ErrFavoriteNotFound when none existed.
	DeleteFavorite(ctx context.Context, userID uint, target entity.FavoriteTarget) error

	// DeleteFavoritesByTarget removes every favorite pointing at target.
	DeleteFavoritesByTarget(ctx context.Context, target entity.FavoriteTarget) (int64, error)

	// DeleteFavoritesByUser removes every favorite owned by userID.
	DeleteFavoritesByUser(ctx context.Context, userID uint) (int64, error)
}
