package handler

import (
	"log/slog"

	"holocron/internal/delivery/api/response"
	"holocron/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for user-related handlers
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userUC.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, users)
}

// GetUser handles GET /user/:id
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.userUC.GetUser(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.OK(c, user)
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(c echo.Context) error {
	var input usecase.UserInput
	if err := bindStrict(c, &input); err != nil {
		return err
	}

	user, err := h.userUC.CreateUser(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return response.Created(c, user)
}

// UpdateUser handles PUT /user/:id
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.UserInput
	if err := bindStrict(c, &input); err != nil {
		return err
	}

	user, err := h.userUC.UpdateUser(c.Request().Context(), id, input)
	if err != nil {
		return err
	}

	return response.OK(c, user)
}

// DeleteUser handles DELETE /user/:id
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.userUC.DeleteUser(c.Request().Context(), id); err != nil {
		return err
	}

	return response.OK(c, response.Message{Message: "User deleted"})
}
