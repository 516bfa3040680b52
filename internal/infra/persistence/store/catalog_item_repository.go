package store

import (
	"context"

	"holocron/internal/domain/entity"
	"holocron/internal/domain/repository"
	"holocron/internal/errors"
	"holocron/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// catalogItemRepository answers kind-agnostic questions about catalog rows.
type catalogItemRepository struct {
	db *gorm.DB
}

// NewCatalogItemRepository is the constructor for catalogItemRepository.
func NewCatalogItemRepository(db *gorm.DB) repository.CatalogItemRepository {
	return &catalogItemRepository{
		db: db,
	}
}

// ExistsCatalogItem reports whether the target row exists.
func (repo *catalogItemRepository) ExistsCatalogItem(ctx context.Context, target entity.FavoriteTarget) (bool, error) {
	if err := target.Validate(); err != nil {
		return false, err
	}

	var count int64
	if err := repo.db.WithContext(ctx).
		Table(model.TableForKind(target.Kind)).
		Where("id = ?", target.ID).
		Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "failed to check %s existence", target.Kind)
	}

	return count > 0, nil
}
