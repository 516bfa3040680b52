// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"holocron/internal/delivery/api/router/handler"
	"holocron/internal/domain/entity"
	"holocron/internal/domain/repository"
	"holocron/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler      *handler.UserHandler
	FavoriteHandler  *handler.FavoriteHandler
	PlanetHandler    *handler.CatalogHandler[entity.Planet, usecase.PlanetInput]
	FilmHandler      *handler.CatalogHandler[entity.Film, usecase.FilmInput]
	StarshipHandler  *handler.CatalogHandler[entity.Starship, usecase.StarshipInput]
	VehicleHandler   *handler.CatalogHandler[entity.Vehicle, usecase.VehicleInput]
	SpeciesHandler   *handler.CatalogHandler[entity.Species, usecase.SpeciesInput]
	CharacterHandler *handler.CatalogHandler[entity.Character, usecase.CharacterInput]
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Users
	e.GET("/users", r.params.UserHandler.ListUsers)
	e.POST("/users", r.params.UserHandler.CreateUser)
	userGroup := e.Group("/user")
	{
		userGroup.GET("/:id", r.params.UserHandler.GetUser)
		userGroup.PUT("/:id", r.params.UserHandler.UpdateUser)
		userGroup.DELETE("/:id", r.params.UserHandler.DeleteUser)
	}

	// Favorites
	e.GET("/favoritos", r.params.FavoriteHandler.ListAllFavorites)
	e.GET("/users/favoritos", r.params.FavoriteHandler.ListUserFavorites)
	favoriteGroup := e.Group("/favorite")
	{
		favoriteGroup.POST("/:kind/:id", r.params.FavoriteHandler.AddFavorite)
		favoriteGroup.DELETE("/:kind/:id", r.params.FavoriteHandler.RemoveFavorite)
	}

	// Catalog
	registerCatalog(e, r.params.PlanetHandler)
	registerCatalog(e, r.params.FilmHandler)
	registerCatalog(e, r.params.StarshipHandler)
	registerCatalog(e, r.params.VehicleHandler)
	registerCatalog(e, r.params.SpeciesHandler)
	registerCatalog(e, r.params.CharacterHandler)
}

// registerCatalog mounts the plural collection path (/planets) and the singular item path (/planet/:id).
func registerCatalog[E repository.CatalogEntity, I usecase.CatalogInput[E]](e *echo.Echo, h *handler.CatalogHandler[E, I]) {
	item := "/" + h.Kind().String()
	collection := CollectionPath(h.Kind())

	e.GET(collection, h.List)
	e.POST(collection, h.Create)
	e.GET(item+"/:id", h.Get)
	e.PUT(item+"/:id", h.Update)
	e.DELETE(item+"/:id", h.Delete)
}

// CollectionPath returns the plural route of kind. Species is its own plural.
func CollectionPath(kind entity.CatalogKind) string {
	if kind == entity.KindSpecies {
		return "/species"
	}

	return "/" + kind.String() + "s"
}
