package handler

import (
	"log/slog"
	"strconv"

	"holocron/internal/delivery/api/response"
	"holocron/internal/domain/entity"
	domainerrors "holocron/internal/domain/errors"
	"holocron/internal/errors"
	"holocron/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FavoriteHandlerParams holds dependencies for FavoriteHandler, injected by Fx.
type FavoriteHandlerParams struct {
	fx.In

	FavoriteUC usecase.FavoriteUsecase
	Logger     *slog.Logger
}

// FavoriteHandler serves the favoritos endpoints.
type FavoriteHandler struct {
	favoriteUC usecase.FavoriteUsecase
	logger     *slog.Logger
}

// NewFavoriteHandler is the constructor for FavoriteHandler
func NewFavoriteHandler(params FavoriteHandlerParams) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUC: params.FavoriteUC,
		logger:     params.Logger,
	}
}

// FavoriteRequest is the body of POST and DELETE /favorite/:kind/:id
type FavoriteRequest struct {
	UserID *uint `json:"user_id" validate:"omitempty,gt=0"`
}

// ListAllFavorites handles GET /favoritos
func (h *FavoriteHandler) ListAllFavorites(c echo.Context) error {
	favorites, err := h.favoriteUC.ListAllFavorites(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, entity.FavoriteViews(favorites))
}

// ListUserFavorites handles GET /users/favoritos?user_id=ID
func (h *FavoriteHandler) ListUserFavorites(c echo.Context) error {
	raw := c.QueryParam("user_id")
	if raw == "" {
		return domainerrors.ErrUserIDRequired
	}

	userID, err := strconv.ParseUint(raw, 10, 0)
	if err != nil || userID == 0 {
		return domainerrors.ErrValidationFailed.WithDetails("user_id must be a positive integer")
	}

	favorites, err := h.favoriteUC.ListFavoritesForUser(c.Request().Context(), uint(userID))
	if err != nil {
		return err
	}

	return response.OK(c, entity.FavoriteViews(favorites))
}

// AddFavorite handles POST /favorite/:kind/:id
func (h *FavoriteHandler) AddFavorite(c echo.Context) error {
	userID, target, err := h.bindFavorite(c)
	if err != nil {
		return err
	}

	favorite, err := h.favoriteUC.AddFavorite(c.Request().Context(), userID, target)
	if err != nil {
		return err
	}

	return response.Created(c, favorite.View())
}

// RemoveFavorite handles DELETE /favorite/:kind/:id
func (h *FavoriteHandler) RemoveFavorite(c echo.Context) error {
	userID, target, err := h.bindFavorite(c)
	if err != nil {
		return err
	}

	if err := h.favoriteUC.RemoveFavorite(c.Request().Context(), userID, target); err != nil {
		return err
	}

	return response.OK(c, response.Message{Message: target.Kind.Title() + " removed from favorites"})
}

func (h *FavoriteHandler) bindFavorite(c echo.Context) (uint, entity.FavoriteTarget, error) {
	kind, err := entity.ParseCatalogKind(c.Param("kind"))
	if err != nil {
		return 0, entity.FavoriteTarget{}, domainerrors.ErrInvalidCatalogKind.WithDetails(err.Error())
	}

	id, err := parseID(c, "id")
	if err != nil {
		return 0, entity.FavoriteTarget{}, err
	}

	var req FavoriteRequest
	if err := bindStrict(c, &req); err != nil {
		if errors.Is(err, domainerrors.ErrNoDataProvided) {
			return 0, entity.FavoriteTarget{}, domainerrors.ErrUserIDRequired
		}

		return 0, entity.FavoriteTarget{}, err
	}
	if req.UserID == nil {
		return 0, entity.FavoriteTarget{}, domainerrors.ErrUserIDRequired
	}

	return *req.UserID, entity.FavoriteTarget{Kind: kind, ID: id}, nil
}
