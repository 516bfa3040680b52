package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"holocron/config"
	"holocron/internal/delivery/api/response"
	"holocron/internal/delivery/api/router"
	"holocron/internal/delivery/api/router/handler"
	"holocron/internal/domain/entity"
	domainerrors "holocron/internal/domain/errors"
	mockusecase "holocron/internal/mocks/usecase"
	"holocron/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testAPI struct {
	echo       *echo.Echo
	userUC     *mockusecase.MockUserUsecase
	favoriteUC *mockusecase.MockFavoriteUsecase
	planetUC   *mockusecase.MockCatalogUsecase[entity.Planet, usecase.PlanetInput]
	filmUC     *mockusecase.MockCatalogUsecase[entity.Film, usecase.FilmInput]
	speciesUC  *mockusecase.MockCatalogUsecase[entity.Species, usecase.SpeciesInput]
}

type envelope struct {
	Data    json.RawMessage     `json:"data"`
	Error   *response.ErrorInfo `json:"error"`
	Message string              `json:"message"`
	Meta    *response.MetaInfo  `json:"meta"`
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	api := &testAPI{
		userUC:     mockusecase.NewMockUserUsecase(t),
		favoriteUC: mockusecase.NewMockFavoriteUsecase(t),
		planetUC:   mockusecase.NewMockCatalogUsecase[entity.Planet, usecase.PlanetInput](t),
		filmUC:     mockusecase.NewMockCatalogUsecase[entity.Film, usecase.FilmInput](t),
		speciesUC:  mockusecase.NewMockCatalogUsecase[entity.Species, usecase.SpeciesInput](t),
	}

	catalogParams := handler.CatalogHandlerParams{Logger: logger}
	api.echo = NewEcho(cfg, logger, router.RouterParams{
		UserHandler:     handler.NewUserHandler(handler.UserHandlerParams{UserUC: api.userUC, Logger: logger}),
		FavoriteHandler: handler.NewFavoriteHandler(handler.FavoriteHandlerParams{FavoriteUC: api.favoriteUC, Logger: logger}),
		PlanetHandler:   handler.NewPlanetHandler(catalogParams, api.planetUC),
		FilmHandler:     handler.NewFilmHandler(catalogParams, api.filmUC),
		StarshipHandler: handler.NewStarshipHandler(catalogParams,
			mockusecase.NewMockCatalogUsecase[entity.Starship, usecase.StarshipInput](t)),
		VehicleHandler: handler.NewVehicleHandler(catalogParams,
			mockusecase.NewMockCatalogUsecase[entity.Vehicle, usecase.VehicleInput](t)),
		SpeciesHandler: handler.NewSpeciesHandler(catalogParams, api.speciesUC),
		CharacterHandler: handler.NewCharacterHandler(catalogParams,
			mockusecase.NewMockCatalogUsecase[entity.Character, usecase.CharacterInput](t)),
	})

	return api
}

func (a *testAPI) do(t *testing.T, method, target, body string) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	a.echo.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return rec.Code, env
}

func ptr[T any](v T) *T {
	return &v
}

func TestHealthCheck(t *testing.T) {
	api := newTestAPI(t)

	rec := httptest.NewRecorder()
	api.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestAddFavorite_Created(t *testing.T) {
	api := newTestAPI(t)
	target := entity.FavoriteTarget{Kind: entity.KindPlanet, ID: 7}

	api.favoriteUC.EXPECT().
		AddFavorite(mock.Anything, uint(3), target).
		Return(&entity.Favorite{ID: 1, UserID: 3, Target: target, TargetName: "Tatooine"}, nil)

	status, env := api.do(t, http.MethodPost, "/favorite/planet/7", `{"user_id": 3}`)

	assert.Equal(t, http.StatusCreated, status)
	assert.JSONEq(t, `{
		"id": 1, "item_type": "planet", "item_id": 7,
		"film": null, "species": null, "starship": null, "vehicle": null, "character": null,
		"planet": "Tatooine"
	}`, string(env.Data))
	require.NotNil(t, env.Meta)
	assert.NotEmpty(t, env.Meta.RequestID)
}

func TestAddFavorite_RequestErrors(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		body     string
		wantCode string
	}{
		{name: "empty body", target: "/favorite/planet/7", body: "", wantCode: "USER_ID_REQUIRED"},
		{name: "empty object", target: "/favorite/planet/7", body: `{}`, wantCode: "USER_ID_REQUIRED"},
		{name: "null user id", target: "/favorite/planet/7", body: `{"user_id": null}`, wantCode: "USER_ID_REQUIRED"},
		{name: "zero user id", target: "/favorite/planet/7", body: `{"user_id": 0}`, wantCode: "VALIDATION_FAILED"},
		{name: "unknown kind", target: "/favorite/droid/7", body: `{"user_id": 3}`, wantCode: "INVALID_CATALOG_KIND"},
		{name: "bad id", target: "/favorite/planet/seven", body: `{"user_id": 3}`, wantCode: "VALIDATION_FAILED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)

			status, env := api.do(t, http.MethodPost, tt.target, tt.body)

			assert.Equal(t, http.StatusBadRequest, status)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
			assert.NotEmpty(t, env.Message)
		})
	}
}

func TestAddFavorite_SpecieAlias(t *testing.T) {
	api := newTestAPI(t)
	target := entity.FavoriteTarget{Kind: entity.KindSpecies, ID: 2}

	api.favoriteUC.EXPECT().
		AddFavorite(mock.Anything, uint(3), target).
		Return(&entity.Favorite{ID: 4, UserID: 3, Target: target, TargetName: "Wookiee"}, nil)

	status, env := api.do(t, http.MethodPost, "/favorite/specie/2", `{"user_id": 3}`)

	assert.Equal(t, http.StatusCreated, status)
	assert.Contains(t, string(env.Data), `"species":"Wookiee"`)
}

func TestRemoveFavorite(t *testing.T) {
	t.Run("removed", func(t *testing.T) {
		api := newTestAPI(t)
		target := entity.FavoriteTarget{Kind: entity.KindCharacter, ID: 1}

		api.favoriteUC.EXPECT().RemoveFavorite(mock.Anything, uint(3), target).Return(nil)

		status, env := api.do(t, http.MethodDelete, "/favorite/character/1", `{"user_id": 3}`)

		assert.Equal(t, http.StatusOK, status)
		assert.JSONEq(t, `{"message":"Character removed from favorites"}`, string(env.Data))
	})

	t.Run("not favorited", func(t *testing.T) {
		api := newTestAPI(t)
		target := entity.FavoriteTarget{Kind: entity.KindPlanet, ID: 7}

		api.favoriteUC.EXPECT().
			RemoveFavorite(mock.Anything, uint(3), target).
			Return(domainerrors.FavoriteNotFound("Planet"))

		status, env := api.do(t, http.MethodDelete, "/favorite/planet/7", `{"user_id": 3}`)

		assert.Equal(t, http.StatusNotFound, status)
		require.NotNil(t, env.Error)
		assert.Equal(t, "FAVORITE_NOT_FOUND", env.Error.Code)
		assert.Equal(t, "Planet is not in favorites", env.Message)
	})
}

func TestListUserFavorites(t *testing.T) {
	t.Run("unknown user", func(t *testing.T) {
		api := newTestAPI(t)
		api.favoriteUC.EXPECT().ListFavoritesForUser(mock.Anything, uint(999)).Return(nil, domainerrors.ErrUserNotFound)

		status, env := api.do(t, http.MethodGet, "/users/favoritos?user_id=999", "")

		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "USER_NOT_FOUND", env.Error.Code)
	})

	t.Run("missing user id", func(t *testing.T) {
		api := newTestAPI(t)

		status, env := api.do(t, http.MethodGet, "/users/favoritos", "")

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "USER_ID_REQUIRED", env.Error.Code)
	})

	t.Run("scoped list", func(t *testing.T) {
		api := newTestAPI(t)
		api.favoriteUC.EXPECT().ListFavoritesForUser(mock.Anything, uint(3)).Return([]*entity.Favorite{
			{ID: 1, UserID: 3, Target: entity.FavoriteTarget{Kind: entity.KindPlanet, ID: 7}, TargetName: "Tatooine"},
		}, nil)

		status, env := api.do(t, http.MethodGet, "/users/favoritos?user_id=3", "")

		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, string(env.Data), `"planet":"Tatooine"`)
	})
}

func TestListAllFavorites_Empty(t *testing.T) {
	api := newTestAPI(t)
	api.favoriteUC.EXPECT().ListAllFavorites(mock.Anything).Return([]*entity.Favorite{}, nil)

	status, env := api.do(t, http.MethodGet, "/favoritos", "")

	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, string(env.Data))
}

func TestCreatePlanet(t *testing.T) {
	api := newTestAPI(t)
	input := usecase.PlanetInput{Name: ptr("Hoth"), URL: ptr("https://swapi.dev/api/planets/4/")}

	api.planetUC.EXPECT().Create(mock.Anything, input).Return(&entity.Planet{ID: 4, Name: "Hoth", URL: *input.URL}, nil)

	status, env := api.do(t, http.MethodPost, "/planets", `{"name": "Hoth", "url": "https://swapi.dev/api/planets/4/"}`)

	assert.Equal(t, http.StatusCreated, status)
	assert.Contains(t, string(env.Data), `"name":"Hoth"`)
}

func TestCatalogRequestErrors(t *testing.T) {
	tests := []struct {
		name        string
		method      string
		target      string
		body        string
		wantCode    string
		wantDetails string
	}{
		{
			name:        "unknown field",
			method:      http.MethodPost,
			target:      "/planets",
			body:        `{"name": "Hoth", "droid": "R2"}`,
			wantCode:    "VALIDATION_FAILED",
			wantDetails: `unknown field "droid"`,
		},
		{
			name:     "empty object",
			method:   http.MethodPut,
			target:   "/planet/4",
			body:     `{}`,
			wantCode: "NO_DATA_PROVIDED",
		},
		{
			name:        "not an object",
			method:      http.MethodPost,
			target:      "/planets",
			body:        `["Hoth"]`,
			wantCode:    "VALIDATION_FAILED",
			wantDetails: "request body must be a JSON object",
		},
		{
			name:        "bad release date",
			method:      http.MethodPost,
			target:      "/films",
			body:        `{"title": "A New Hope", "episode_id": 4, "url": "https://swapi.dev/api/films/1/", "release_date": "25/05/1977"}`,
			wantCode:    "VALIDATION_FAILED",
			wantDetails: "release_date must match 2006-01-02",
		},
		{
			name:        "wrong type",
			method:      http.MethodPost,
			target:      "/films",
			body:        `{"episode_id": "four"}`,
			wantCode:    "VALIDATION_FAILED",
			wantDetails: "episode_id must be of type int",
		},
		{
			name:        "bad id",
			method:      http.MethodGet,
			target:      "/planet/abc",
			wantCode:    "VALIDATION_FAILED",
			wantDetails: "id must be a positive integer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)

			status, env := api.do(t, tt.method, tt.target, tt.body)

			assert.Equal(t, http.StatusBadRequest, status)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
			if tt.wantDetails != "" {
				assert.Equal(t, tt.wantDetails, env.Error.Details)
			}
		})
	}
}

func TestGetPlanet_NotFound(t *testing.T) {
	api := newTestAPI(t)
	api.planetUC.EXPECT().Get(mock.Anything, uint(42)).Return(nil, domainerrors.CatalogItemNotFound("Planet"))

	status, env := api.do(t, http.MethodGet, "/planet/42", "")

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Planet not found", env.Message)
}

func TestDeleteSpecies(t *testing.T) {
	api := newTestAPI(t)
	api.speciesUC.EXPECT().Delete(mock.Anything, uint(3)).Return(nil)

	status, env := api.do(t, http.MethodDelete, "/species/3", "")

	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"message":"Species deleted"}`, string(env.Data))
}

func TestUsers(t *testing.T) {
	t.Run("list empty", func(t *testing.T) {
		api := newTestAPI(t)
		api.userUC.EXPECT().ListUsers(mock.Anything).Return(nil, domainerrors.ErrUserNotFound.WithMessage("No users found"))

		status, env := api.do(t, http.MethodGet, "/users", "")

		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "No users found", env.Message)
	})

	t.Run("create without body", func(t *testing.T) {
		api := newTestAPI(t)

		status, env := api.do(t, http.MethodPost, "/users", "")

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "NO_DATA_PROVIDED", env.Error.Code)
	})

	t.Run("create hides password", func(t *testing.T) {
		api := newTestAPI(t)
		input := usecase.UserInput{Email: ptr("leia@alderaan.gov"), Username: ptr("leia"), Password: ptr("h0pe")}

		api.userUC.EXPECT().CreateUser(mock.Anything, input).Return(&entity.User{
			ID: 1, Email: "leia@alderaan.gov", Username: "leia", PasswordHash: "$2a$10$hash", IsActive: true,
		}, nil)

		status, env := api.do(t, http.MethodPost, "/users",
			`{"email": "leia@alderaan.gov", "username": "leia", "password": "h0pe"}`)

		assert.Equal(t, http.StatusCreated, status)
		assert.NotContains(t, string(env.Data), "hash")
		assert.Contains(t, string(env.Data), `"is_active":true`)
	})

	t.Run("update conflict", func(t *testing.T) {
		api := newTestAPI(t)
		input := usecase.UserInput{Email: ptr("luke@tatooine.org")}

		api.userUC.EXPECT().UpdateUser(mock.Anything, uint(2), input).Return(nil, domainerrors.ErrUserAlreadyExists)

		status, env := api.do(t, http.MethodPut, "/user/2", `{"email": "luke@tatooine.org"}`)

		assert.Equal(t, http.StatusConflict, status)
		assert.Equal(t, "USER_ALREADY_EXISTS", env.Error.Code)
	})

	t.Run("delete", func(t *testing.T) {
		api := newTestAPI(t)
		api.userUC.EXPECT().DeleteUser(mock.Anything, uint(2)).Return(nil)

		status, _ := api.do(t, http.MethodDelete, "/user/2", "")

		assert.Equal(t, http.StatusOK, status)
	})
}

func TestUnknownRoute(t *testing.T) {
	api := newTestAPI(t)

	status, env := api.do(t, http.MethodGet, "/droids", "")

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "HTTP_ERROR", env.Error.Code)
}
