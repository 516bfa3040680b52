package main

import (
	"holocron/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.FavoriteModel{},
		model.PlanetModel{},
		model.FilmModel{},
		model.StarshipModel{},
		model.VehicleModel{},
		model.SpeciesModel{},
		model.CharacterModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
