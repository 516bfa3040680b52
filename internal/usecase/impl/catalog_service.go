package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "holocron/internal/delivery/context"
	"holocron/internal/domain/entity"
	domainerrors "holocron/internal/domain/errors"
	"holocron/internal/domain/repository"
	"holocron/internal/errors"
	"holocron/internal/usecase"
)

// catalogService implements CatalogUsecase for one kind. Writes run in a transaction
// so the favorites of a deleted item go with it.
type catalogService[E repository.CatalogEntity, I usecase.CatalogInput[E]] struct {
	kind      entity.CatalogKind
	txManager repository.TransactionManager
	repo      repository.CatalogRepository[E]
	txRepo    func(repository.RepositoryFactory) repository.CatalogRepository[E]
	idOf      func(*E) uint
	logger    *slog.Logger
}

func newCatalogService[E repository.CatalogEntity, I usecase.CatalogInput[E]](
	kind entity.CatalogKind,
	txManager repository.TransactionManager,
	repo repository.CatalogRepository[E],
	txRepo func(repository.RepositoryFactory) repository.CatalogRepository[E],
	idOf func(*E) uint,
	logger *slog.Logger,
) *catalogService[E, I] {
	return &catalogService[E, I]{
		kind:      kind,
		txManager: txManager,
		repo:      repo,
		txRepo:    txRepo,
		idOf:      idOf,
		logger:    logger,
	}
}

func (srv *catalogService[E, I]) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger).With(slog.String("kind", srv.kind.String()))
}

// Create validates required fields and stores a new item.
func (srv *catalogService[E, I]) Create(ctx context.Context, input I) (*E, error) {
	if fields := input.MissingFields(); len(fields) > 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("missing required fields: " + strings.Join(fields, ", "))
	}

	item := new(E)
	input.Apply(item)

	var created *E
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		var err error
		created, err = srv.txRepo(repos).Create(ctx, item)

		return err
	})
	if err != nil {
		return nil, srv.translate(ctx, err, "create")
	}

	srv.log(ctx).Info("Catalog item created", slog.Any("id", srv.idOf(created)))

	return created, nil
}

func (srv *catalogService[E, I]) Get(ctx context.Context, id uint) (*E, error) {
	item, err := srv.repo.FindByID(ctx, id)
	if err != nil {
		return nil, srv.translate(ctx, err, "get")
	}

	return item, nil
}

func (srv *catalogService[E, I]) List(ctx context.Context) ([]*E, error) {
	items, err := srv.repo.FindAll(ctx)
	if err != nil {
		return nil, srv.translate(ctx, err, "list")
	}

	return items, nil
}

// Update loads the item, overlays the input and saves it in one transaction.
func (srv *catalogService[E, I]) Update(ctx context.Context, id uint, input I) (*E, error) {
	var updated *E
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		repo := srv.txRepo(repos)

		item, err := repo.FindByID(ctx, id)
		if err != nil {
			return err
		}

		input.Apply(item)

		updated, err = repo.Update(ctx, item)

		return err
	})
	if err != nil {
		return nil, srv.translate(ctx, err, "update")
	}

	srv.log(ctx).Info("Catalog item updated", slog.Any("id", id))

	return updated, nil
}

// Delete removes the favorites pointing at the item, then the item.
func (srv *catalogService[E, I]) Delete(ctx context.Context, id uint) error {
	target := entity.FavoriteTarget{Kind: srv.kind, ID: id}

	var removed int64
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		var err error
		removed, err = repos.NewFavoriteRepository().DeleteFavoritesByTarget(ctx, target)
		if err != nil {
			return err
		}

		return srv.txRepo(repos).Delete(ctx, id)
	})
	if err != nil {
		return srv.translate(ctx, err, "delete")
	}

	srv.log(ctx).Info("Catalog item deleted", slog.Any("id", id), slog.Int64("favorites_removed", removed))

	return nil
}

// translate maps repository sentinels onto AppErrors. Unknown failures are logged and wrapped.
func (srv *catalogService[E, I]) translate(ctx context.Context, err error, op string) error {
	switch {
	case errors.Is(err, repository.ErrCatalogItemNotFound):
		return domainerrors.CatalogItemNotFound(srv.kind.Title())
	case errors.Is(err, repository.ErrDuplicateCatalogItem):
		return domainerrors.ErrCatalogItemAlreadyExists
	case errors.Is(err, repository.ErrInvalidReference):
		return domainerrors.ErrInvalidReference.WithDetails(err.Error())
	}

	srv.log(ctx).Error("Catalog operation failed", slog.String("op", op), slog.Any("error", err))

	return errors.Wrapf(err, "failed to %s %s", op, srv.kind)
}
