// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "holocron/internal/delivery/context"
	"holocron/internal/domain/entity"
	domainerrors "holocron/internal/domain/errors"
	"holocron/internal/domain/repository"
	"holocron/internal/domain/service"
	"holocron/internal/errors"
	"holocron/internal/usecase"

	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateUser hashes the password and stores the user. New users are active unless told otherwise.
func (srv *userService) CreateUser(ctx context.Context, input usecase.UserInput) (*entity.User, error) {
	if fields := input.MissingFields(); len(fields) > 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("missing required fields: " + strings.Join(fields, ", "))
	}

	user := &entity.User{IsActive: true}
	if err := srv.apply(ctx, user, input); err != nil {
		return nil, err
	}

	var created *entity.User
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		var err error
		created, err = repos.NewUserRepository().CreateUser(ctx, user)

		return err
	})
	if err != nil {
		return nil, srv.translate(ctx, err, "create")
	}

	srv.log(ctx).Info("User created", slog.Any("userID", created.ID))

	return created, nil
}

func (srv *userService) GetUser(ctx context.Context, id uint) (*entity.User, error) {
	user, err := srv.userRepo.FindUserByID(ctx, id)
	if err != nil {
		return nil, srv.translate(ctx, err, "get")
	}

	return user, nil
}

// ListUsers returns ErrUserNotFound for an empty table.
func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.FindAllUsers(ctx)
	if err != nil {
		return nil, srv.translate(ctx, err, "list")
	}

	if len(users) == 0 {
		return nil, domainerrors.ErrUserNotFound.WithMessage("No users found")
	}

	return users, nil
}

func (srv *userService) UpdateUser(ctx context.Context, id uint, input usecase.UserInput) (*entity.User, error) {
	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		userRepo := repos.NewUserRepository()

		user, err := userRepo.FindUserByID(ctx, id)
		if err != nil {
			return err
		}

		if err := srv.apply(ctx, user, input); err != nil {
			return err
		}

		updated, err = userRepo.UpdateUser(ctx, user)

		return err
	})
	if err != nil {
		return nil, srv.translate(ctx, err, "update")
	}

	srv.log(ctx).Info("User updated", slog.Any("userID", id))

	return updated, nil
}

// DeleteUser removes the user's favorites and then the user in one transaction.
func (srv *userService) DeleteUser(ctx context.Context, id uint) error {
	var removed int64
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		var err error
		removed, err = repos.NewFavoriteRepository().DeleteFavoritesByUser(ctx, id)
		if err != nil {
			return err
		}

		return repos.NewUserRepository().DeleteUser(ctx, id)
	})
	if err != nil {
		return srv.translate(ctx, err, "delete")
	}

	srv.log(ctx).Info("User deleted", slog.Any("userID", id), slog.Int64("favorites_removed", removed))

	return nil
}

// apply copies the input onto user, hashing a new password.
func (srv *userService) apply(ctx context.Context, user *entity.User, input usecase.UserInput) error {
	if input.Password != nil {
		hash, err := srv.hasher.Hash(*input.Password)
		if errors.Is(err, service.ErrPasswordTooLong) {
			return domainerrors.ErrValidationFailed.WithDetails("password must be at most 72 bytes")
		}
		if err != nil {
			srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

			return domainerrors.ErrPasswordHashFailed
		}
		user.PasswordHash = hash
	}

	if input.Email != nil {
		user.Email = strings.TrimSpace(*input.Email)
	}
	if input.Username != nil {
		user.Username = strings.TrimSpace(*input.Username)
	}
	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	return nil
}

func (srv *userService) translate(ctx context.Context, err error, op string) error {
	var appErr domainerrors.AppError
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		return domainerrors.ErrUserNotFound
	case errors.Is(err, repository.ErrDuplicateUser):
		return domainerrors.ErrUserAlreadyExists
	case errors.As(err, &appErr) && appErr.HTTPCode() < 500:
		return err
	}

	srv.log(ctx).Error("User operation failed", slog.String("op", op), slog.Any("error", err))

	return errors.Wrapf(err, "failed to %s user", op)
}
