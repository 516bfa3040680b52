package store

import (
	"context"
	"fmt"

	"holocron/internal/domain/entity"
	"holocron/internal/domain/repository"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory hands out repositories bound to one transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object *gorm.Tx is also a *gorm.DB
}

// NewRepositoryFactory returns a factory over db. Used directly by tools that manage their own transaction.
func NewRepositoryFactory(db *gorm.DB) repository.RepositoryFactory {
	return &gormRepositoryFactory{tx: db}
}

func (f *gormRepositoryFactory) NewUserRepository() repository.UserRepository {
	return NewUserRepository(f.tx)
}

func (f *gormRepositoryFactory) NewFavoriteRepository() repository.FavoriteRepository {
	return NewFavoriteRepository(f.tx)
}

func (f *gormRepositoryFactory) NewCatalogItemRepository() repository.CatalogItemRepository {
	return NewCatalogItemRepository(f.tx)
}

func (f *gormRepositoryFactory) NewPlanetRepository() repository.CatalogRepository[entity.Planet] {
	return NewPlanetRepository(f.tx)
}

func (f *gormRepositoryFactory) NewFilmRepository() repository.CatalogRepository[entity.Film] {
	return NewFilmRepository(f.tx)
}

func (f *gormRepositoryFactory) NewStarshipRepository() repository.CatalogRepository[entity.Starship] {
	return NewStarshipRepository(f.tx)
}

func (f *gormRepositoryFactory) NewVehicleRepository() repository.CatalogRepository[entity.Vehicle] {
	return NewVehicleRepository(f.tx)
}

func (f *gormRepositoryFactory) NewSpeciesRepository() repository.CatalogRepository[entity.Species] {
	return NewSpeciesRepository(f.tx)
}

func (f *gormRepositoryFactory) NewCharacterRepository() repository.CatalogRepository[entity.Character] {
	return NewCharacterRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&gormRepositoryFactory{tx: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
