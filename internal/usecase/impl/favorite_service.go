package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "holocron/internal/delivery/context"
	"holocron/internal/domain/entity"
	domainerrors "holocron/internal/domain/errors"
	"holocron/internal/domain/repository"
	"holocron/internal/domain/service"
	"holocron/internal/errors"
	"holocron/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type favoriteService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	favoriteRepo repository.FavoriteRepository
	publisher    service.EventPublisher
	logger       *slog.Logger
	now          func() time.Time
}

// FavoriteServiceParams holds dependencies for FavoriteService, injected by Fx.
type FavoriteServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	FavoriteRepo repository.FavoriteRepository
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewFavoriteService creates a new favorite service instance
func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	return &favoriteService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		favoriteRepo: params.FavoriteRepo,
		publisher:    params.Publisher,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *favoriteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddFavorite checks the user, the target and the pair inside one transaction.
// The unique indexes still catch a concurrent insert of the same pair.
func (srv *favoriteService) AddFavorite(ctx context.Context, userID uint, target entity.FavoriteTarget) (*entity.Favorite, error) {
	if err := validateTarget(target); err != nil {
		return nil, err
	}

	var created *entity.Favorite
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if _, err := repos.NewUserRepository().FindUserByID(ctx, userID); err != nil {
			return err
		}

		exists, err := repos.NewCatalogItemRepository().ExistsCatalogItem(ctx, target)
		if err != nil {
			return err
		}
		if !exists {
			return domainerrors.CatalogItemNotFound(target.Kind.Title())
		}

		favoriteRepo := repos.NewFavoriteRepository()

		_, err = favoriteRepo.FindFavorite(ctx, userID, target)
		if err == nil {
			return domainerrors.FavoriteAlreadyExists(target.Kind.Title())
		}
		if !errors.Is(err, repository.ErrFavoriteNotFound) {
			return err
		}

		created, err = favoriteRepo.CreateFavorite(ctx, &entity.Favorite{
			UserID:    userID,
			Target:    target,
			CreatedAt: srv.now(),
		})

		return err
	})
	if err != nil {
		return nil, srv.translate(ctx, err, target, "add")
	}

	srv.log(ctx).Info("Favorite added",
		slog.Any("userID", userID),
		slog.String("item_type", target.Kind.String()),
		slog.Any("item_id", target.ID),
	)
	srv.publish(ctx, service.FavoriteEventAdded, userID, target)

	return created, nil
}

// RemoveFavorite deletes the (user, target) link. A user without that favorite gets NotFound.
func (srv *favoriteService) RemoveFavorite(ctx context.Context, userID uint, target entity.FavoriteTarget) error {
	if err := validateTarget(target); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if _, err := repos.NewUserRepository().FindUserByID(ctx, userID); err != nil {
			return err
		}

		return repos.NewFavoriteRepository().DeleteFavorite(ctx, userID, target)
	})
	if err != nil {
		return srv.translate(ctx, err, target, "remove")
	}

	srv.log(ctx).Info("Favorite removed",
		slog.Any("userID", userID),
		slog.String("item_type", target.Kind.String()),
		slog.Any("item_id", target.ID),
	)
	srv.publish(ctx, service.FavoriteEventRemoved, userID, target)

	return nil
}

func (srv *favoriteService) ListFavoritesForUser(ctx context.Context, userID uint) ([]*entity.Favorite, error) {
	if _, err := srv.userRepo.FindUserByID(ctx, userID); err != nil {
		return nil, srv.translate(ctx, err, entity.FavoriteTarget{}, "list")
	}

	favorites, err := srv.favoriteRepo.FindFavoritesByUser(ctx, userID)
	if err != nil {
		return nil, srv.translate(ctx, err, entity.FavoriteTarget{}, "list")
	}

	return favorites, nil
}

func (srv *favoriteService) ListAllFavorites(ctx context.Context) ([]*entity.Favorite, error) {
	favorites, err := srv.favoriteRepo.FindAllFavorites(ctx)
	if err != nil {
		return nil, srv.translate(ctx, err, entity.FavoriteTarget{}, "list")
	}

	return favorites, nil
}

func validateTarget(target entity.FavoriteTarget) error {
	if !target.Kind.IsValid() {
		return domainerrors.ErrInvalidCatalogKind.WithDetails(string(target.Kind))
	}
	if target.ID == 0 {
		return domainerrors.ErrValidationFailed.WithDetails("item id must be positive")
	}

	return nil
}

// publish emits the change after commit. Failures are logged, never returned.
func (srv *favoriteService) publish(ctx context.Context, eventType string, userID uint, target entity.FavoriteTarget) {
	event := &service.FavoriteEvent{
		EventID:    uuid.New().String(),
		Type:       eventType,
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		UserID:     userID,
		ItemType:   target.Kind.String(),
		ItemID:     target.ID,
		OccurredAt: srv.now().UTC(),
	}

	if err := srv.publisher.PublishFavoriteEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish favorite event",
			slog.String("event_id", event.EventID),
			slog.String("type", eventType),
			slog.Any("error", err),
		)
	}
}

func (srv *favoriteService) translate(ctx context.Context, err error, target entity.FavoriteTarget, op string) error {
	var appErr domainerrors.AppError
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		return domainerrors.ErrUserNotFound
	case errors.Is(err, repository.ErrFavoriteNotFound):
		return domainerrors.FavoriteNotFound(target.Kind.Title())
	case errors.Is(err, repository.ErrDuplicateFavorite):
		return domainerrors.FavoriteAlreadyExists(target.Kind.Title())
	case errors.IsAny(err, repository.ErrCatalogItemNotFound, repository.ErrInvalidReference):
		// the item vanished between the existence check and the insert
		return domainerrors.CatalogItemNotFound(target.Kind.Title())
	case errors.As(err, &appErr) && appErr.HTTPCode() < 500:
		return err
	}

	srv.log(ctx).Error("Favorite operation failed", slog.String("op", op), slog.Any("error", err))

	return errors.Wrapf(err, "failed to %s favorite", op)
}
