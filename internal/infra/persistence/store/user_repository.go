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

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// CreateUser persists a new user.
func (repo *userRepository) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	userM := fromUserDomain(user)
	userM.ID = 0

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil, repository.ErrDuplicateUser
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	return toUserDomain(userM), nil
}

// FindUserByID retrieves a user by its unique ID.
func (repo *userRepository) FindUserByID(ctx context.Context, id uint) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(&userM), nil
}

// FindAllUsers retrieves every user ordered by ID.
func (repo *userRepository) FindAllUsers(ctx context.Context) ([]*entity.User, error) {
	var userModels []*model.UserModel

	if err := repo.db.WithContext(ctx).
		Order("id").
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// UpdateUser overwrites every column of an existing user.
func (repo *userRepository) UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	userM := fromUserDomain(user)

	result := repo.db.WithContext(ctx).
		Model(userM).
		Select("*").
		Omit(clause.Associations).
		Updates(userM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return nil, repository.ErrDuplicateUser
		}

		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrUserNotFound
	}

	return repo.FindUserByID(ctx, user.ID)
}

// DeleteUser removes a user. Favorites are removed by the caller in the same transaction.
func (repo *userRepository) DeleteUser(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.UserModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Email:        data.Email,
		Username:     data.Username,
		PasswordHash: data.Password,
		Name:         data.Name,
		LastName:     data.LastName,
		IsActive:     data.IsActive,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:       data.ID,
		Email:    data.Email,
		Username: data.Username,
		Password: data.PasswordHash,
		Name:     data.Name,
		LastName: data.LastName,
		IsActive: data.IsActive,
	}
}
