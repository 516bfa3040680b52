package handler

import (
	"log/slog"
	"net/http"

	"holocron/internal/delivery/api/response"
	"holocron/internal/domain/entity"
	"holocron/internal/domain/repository"
	"holocron/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds the dependencies every catalog handler shares, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	Logger *slog.Logger
}

// CatalogHandler serves the CRUD endpoints of one catalog kind.
type CatalogHandler[E repository.CatalogEntity, I usecase.CatalogInput[E]] struct {
	kind      entity.CatalogKind
	catalogUC usecase.CatalogUsecase[E, I]
	logger    *slog.Logger
}

func newCatalogHandler[E repository.CatalogEntity, I usecase.CatalogInput[E]](
	kind entity.CatalogKind,
	params CatalogHandlerParams,
	catalogUC usecase.CatalogUsecase[E, I],
) *CatalogHandler[E, I] {
	return &CatalogHandler[E, I]{
		kind:      kind,
		catalogUC: catalogUC,
		logger:    params.Logger,
	}
}

func NewPlanetHandler(
	params CatalogHandlerParams,
	catalogUC usecase.CatalogUsecase[entity.Planet, usecase.PlanetInput],
) *CatalogHandler[entity.Planet, usecase.PlanetInput] {
	return newCatalogHandler(entity.KindPlanet, params, catalogUC)
}

func NewFilmHandler(
	params CatalogHandlerParams,
	catalogUC usecase.CatalogUsecase[entity.Film, usecase.FilmInput],
) *CatalogHandler[entity.Film, usecase.FilmInput] {
	return newCatalogHandler(entity.KindFilm, params, catalogUC)
}

func NewStarshipHandler(
	params CatalogHandlerParams,
	catalogUC usecase.CatalogUsecase[entity.Starship, usecase.StarshipInput],
) *CatalogHandler[entity.Starship, usecase.StarshipInput] {
	return newCatalogHandler(entity.KindStarship, params, catalogUC)
}

func NewVehicleHandler(
	params CatalogHandlerParams,
	catalogUC usecase.CatalogUsecase[entity.Vehicle, usecase.VehicleInput],
) *CatalogHandler[entity.Vehicle, usecase.VehicleInput] {
	return newCatalogHandler(entity.KindVehicle, params, catalogUC)
}

func NewSpeciesHandler(
	params CatalogHandlerParams,
	catalogUC usecase.CatalogUsecase[entity.Species, usecase.SpeciesInput],
) *CatalogHandler[entity.Species, usecase.SpeciesInput] {
	return newCatalogHandler(entity.KindSpecies, params, catalogUC)
}

func NewCharacterHandler(
	params CatalogHandlerParams,
	catalogUC usecase.CatalogUsecase[entity.Character, usecase.CharacterInput],
) *CatalogHandler[entity.Character, usecase.CharacterInput] {
	return newCatalogHandler(entity.KindCharacter, params, catalogUC)
}

// Kind returns the catalog kind the handler serves.
func (h *CatalogHandler[E, I]) Kind() entity.CatalogKind {
	return h.kind
}

// List handles GET on the collection path.
func (h *CatalogHandler[E, I]) List(c echo.Context) error {
	items, err := h.catalogUC.List(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, items)
}

// Get handles GET on the item path.
func (h *CatalogHandler[E, I]) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	item, err := h.catalogUC.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.OK(c, item)
}

// Create handles POST on the collection path.
func (h *CatalogHandler[E, I]) Create(c echo.Context) error {
	var input I
	if err := bindStrict(c, &input); err != nil {
		return err
	}

	item, err := h.catalogUC.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return response.Created(c, item)
}

// Update handles PUT on the item path.
func (h *CatalogHandler[E, I]) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var input I
	if err := bindStrict(c, &input); err != nil {
		return err
	}

	item, err := h.catalogUC.Update(c.Request().Context(), id, input)
	if err != nil {
		return err
	}

	return response.OK(c, item)
}

// Delete handles DELETE on the item path.
func (h *CatalogHandler[E, I]) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.catalogUC.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, response.Message{Message: h.kind.Title() + " deleted"})
}
