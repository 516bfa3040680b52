package store

import (
	"context"

	"holocron/internal/domain/entity"
	domainerrors "holocron/internal/domain/errors"
	"holocron/internal/domain/repository"
	"holocron/internal/errors"
	"holocron/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// favoriteRepository implements the repository.FavoriteRepository interface.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{
		db: db,
	}
}

// CreateFavorite inserts a favoritos row with exactly one target column set.
// A zero CreatedAt is left for GORM to fill.
func (repo *favoriteRepository) CreateFavorite(ctx context.Context, favorite *entity.Favorite) (*entity.Favorite, error) {
	if err := favorite.Target.Validate(); err != nil {
		return nil, err
	}

	favoriteM := &model.FavoriteModel{UserID: favorite.UserID}
	favoriteM.SetTarget(favorite.Target)
	if !favorite.CreatedAt.IsZero() {
		createdAt := favorite.CreatedAt.UTC()
		favoriteM.CreatedAt = &createdAt
	}

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(favoriteM).Error; err != nil {
		switch {
		case isUniqueConstraintViolation(err):
			return nil, repository.ErrDuplicateFavorite
		case isForeignKeyConstraintViolation(err):
			return nil, repository.ErrInvalidReference
		case isCheckConstraintViolation(err):
			return nil, errors.Wrap(entity.ErrInvalidFavoriteTarget, "favoritos check rejected the row")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create favorite")
	}

	return repo.findByID(ctx, favoriteM.ID)
}

// FindFavorite retrieves the favorite linking a user to a target.
func (repo *favoriteRepository) FindFavorite(ctx context.Context, userID uint, target entity.FavoriteTarget) (*entity.Favorite, error) {
	if err := target.Validate(); err != nil {
		return nil, err
	}

	var favoriteM model.FavoriteModel
	if err := repo.withTargets(ctx).
		Where("user_id = ?", userID).
		Where(clause.Eq{Column: clause.Column{Name: model.FavoriteColumn(target.Kind)}, Value: target.ID}).
		First(&favoriteM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFavoriteNotFound
		}

		return nil, errors.Wrap(err, "failed to find favorite")
	}

	return toFavoriteDomain(&favoriteM)
}

// FindFavoritesByUser retrieves a user's favorites ordered by ID.
func (repo *favoriteRepository) FindFavoritesByUser(ctx context.Context, userID uint) ([]*entity.Favorite, error) {
	var favoriteModels []*model.FavoriteModel

	if err := repo.withTargets(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&favoriteModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find favorites by user")
	}

	return toFavoritesDomain(favoriteModels)
}

// FindAllFavorites retrieves every favorite ordered by ID.
func (repo *favoriteRepository) FindAllFavorites(ctx context.Context) ([]*entity.Favorite, error) {
	var favoriteModels []*model.FavoriteModel

	if err := repo.withTargets(ctx).
		Order("id").
		Find(&favoriteModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}

	return toFavoritesDomain(favoriteModels)
}

// DeleteFavorite removes the favorite linking a user to a target.
func (repo *favoriteRepository) DeleteFavorite(ctx context.Context, userID uint, target entity.FavoriteTarget) error {
	if err := target.Validate(); err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where(clause.Eq{Column: clause.Column{Name: model.FavoriteColumn(target.Kind)}, Value: target.ID}).
		Delete(&model.FavoriteModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete favorite")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFavoriteNotFound
	}

	return nil
}

// DeleteFavoritesByTarget removes every favorite pointing at a catalog item.
func (repo *favoriteRepository) DeleteFavoritesByTarget(ctx context.Context, target entity.FavoriteTarget) (int64, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	result := repo.db.WithContext(ctx).
		Where(clause.Eq{Column: clause.Column{Name: model.FavoriteColumn(target.Kind)}, Value: target.ID}).
		Delete(&model.FavoriteModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete favorites by target")
	}

	return result.RowsAffected, nil
}

// DeleteFavoritesByUser removes every favorite owned by a user.
func (repo *favoriteRepository) DeleteFavoritesByUser(ctx context.Context, userID uint) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.FavoriteModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete favorites by user")
	}

	return result.RowsAffected, nil
}

func (repo *favoriteRepository) findByID(ctx context.Context, id uint) (*entity.Favorite, error) {
	var favoriteM model.FavoriteModel
	if err := repo.withTargets(ctx).
		Where("id = ?", id).
		First(&favoriteM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFavoriteNotFound
		}

		return nil, errors.Wrap(err, "failed to reload favorite")
	}

	return toFavoriteDomain(&favoriteM)
}

// withTargets preloads every target relation so favorites carry their display name.
func (repo *favoriteRepository) withTargets(ctx context.Context) *gorm.DB {
	query := repo.db.WithContext(ctx)
	for _, relation := range model.FavoriteTargetRelations {
		query = query.Preload(relation)
	}

	return query
}

// --- Mapper Functions ---

func toFavoriteDomain(data *model.FavoriteModel) (*entity.Favorite, error) {
	target, name, ok := data.Target()
	if !ok {
		return nil, errors.Wrapf(entity.ErrInvalidFavoriteTarget, "favoritos row %d", data.ID)
	}

	favorite := &entity.Favorite{
		ID:         data.ID,
		UserID:     data.UserID,
		Target:     target,
		TargetName: name,
	}
	if data.CreatedAt != nil {
		favorite.CreatedAt = *data.CreatedAt
	}

	return favorite, nil
}

func toFavoritesDomain(models []*model.FavoriteModel) ([]*entity.Favorite, error) {
	favorites := make([]*entity.Favorite, 0, len(models))
	for _, favoriteM := range models {
		favorite, err := toFavoriteDomain(favoriteM)
		if err != nil {
			return nil, err
		}
		favorites = append(favorites, favorite)
	}

	return favorites, nil
}
