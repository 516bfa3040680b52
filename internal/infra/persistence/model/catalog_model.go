package model

import "time"

// Association tables linking catalog rows to films.
const (
	StarshipsFilmsTable = "starships_films"
	VehiclesFilmsTable  = "vehicles_films"
	SpeciesFilmsTable   = "species_films"
	FilmsPlanetsTable   = "films_planets"
)

// PlanetModel mirrors the 'planet' table.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type PlanetModel struct {
	ID             uint      `gorm:"primaryKey"`
	Name           string    `gorm:"size:250;not null"`
	Diameter       string    `gorm:"size:250"`
	RotationPeriod string    `gorm:"size:250"`
	OrbitalPeriod  string    `gorm:"size:250"`
	Gravity        string    `gorm:"size:250"`
	Population     string    `gorm:"size:250"`
	Climate        string    `gorm:"size:250"`
	Terrain        string    `gorm:"size:250"`
	SurfaceWater   string    `gorm:"size:250"`
	URL            string    `gorm:"size:250;not null;uniqueIndex:idx_planet_url"`
	Created        time.Time `gorm:"autoCreateTime"`
	Edited         time.Time `gorm:"autoUpdateTime"`
}

// TableName explicitly sets the table name for GORM.
func (PlanetModel) TableName() string {
	return "planet"
}

// FilmModel mirrors the 'film' table.
type FilmModel struct {
	ID           uint   `gorm:"primaryKey"`
	Title        string `gorm:"size:250;not null"`
	EpisodeID    int    `gorm:"not null"`
	Director     string `gorm:"size:250"`
	OpeningCrawl string `gorm:"type:text"`
	Producer     string `gorm:"size:250"`
	ReleaseDate  *time.Time
	URL          string    `gorm:"size:250;not null;uniqueIndex:idx_film_url"`
	Created      time.Time `gorm:"autoCreateTime"`
	Edited       time.Time `gorm:"autoUpdateTime"`
}

// TableName explicitly sets the table name for GORM.
func (FilmModel) TableName() string {
	return "film"
}

// StarshipModel mirrors the 'starship' table. Film links live in starships_films.
type StarshipModel struct {
	ID                   uint      `gorm:"primaryKey"`
	Name                 string    `gorm:"size:250;not null"`
	Model                string    `gorm:"size:250"`
	StarshipClass        string    `gorm:"size:250"`
	Manufacturer         string    `gorm:"size:250"`
	CostInCredits        string    `gorm:"size:250"`
	Length               string    `gorm:"size:250"`
	Crew                 string    `gorm:"size:250"`
	Passengers           string    `gorm:"size:250"`
	MaxAtmospheringSpeed string    `gorm:"size:250"`
	HyperdriveRating     string    `gorm:"size:250"`
	MGLT                 string    `gorm:"column:mglt;size:250"`
	CargoCapacity        string    `gorm:"size:250"`
	Consumables          string    `gorm:"size:250"`
	URL                  string    `gorm:"size:250;not null;uniqueIndex:idx_starship_url"`
	Created              time.Time `gorm:"autoCreateTime"`
	Edited               time.Time `gorm:"autoUpdateTime"`
}

// TableName explicitly sets the table name for GORM.
func (StarshipModel) TableName() string {
	return "starship"
}

// VehicleModel mirrors the 'vehicle' table. Film links live in vehicles_films.
type VehicleModel struct {
	ID                   uint      `gorm:"primaryKey"`
	Name                 string    `gorm:"size:250;not null"`
	Model                string    `gorm:"size:250;not null"`
	VehicleClass         string    `gorm:"size:250"`
	Manufacturer         string    `gorm:"size:250"`
	CostInCredits        string    `gorm:"size:250"`
	Length               string    `gorm:"size:250"`
	Crew                 string    `gorm:"size:250"`
	Passengers           string    `gorm:"size:250;not null"`
	MaxAtmospheringSpeed string    `gorm:"size:250"`
	CargoCapacity        string    `gorm:"size:250"`
	Consumables          string    `gorm:"size:250"`
	URL                  string    `gorm:"size:250;not null;uniqueIndex:idx_vehicle_url"`
	Created              time.Time `gorm:"autoCreateTime"`
	Edited               time.Time `gorm:"autoUpdateTime"`
}

// TableName explicitly sets the table name for GORM.
func (VehicleModel) TableName() string {
	return "vehicle"
}

// SpeciesModel mirrors the 'species' table. HomeworldID references planet.id.
type SpeciesModel struct {
	ID              uint   `gorm:"primaryKey"`
	Name            string `gorm:"size:250;not null"`
	Classification  string `gorm:"size:250"`
	Designation     string `gorm:"size:250"`
	AverageHeight   string `gorm:"size:250"`
	AverageLifespan string `gorm:"size:250"`
	EyeColors       string `gorm:"size:250"`
	HairColors      string `gorm:"size:250"`
	SkinColors      string `gorm:"size:250"`
	Language        string `gorm:"size:250;not null"`
	HomeworldID     *uint
	URL             string    `gorm:"size:250;not null;uniqueIndex:idx_species_url"`
	Created         time.Time `gorm:"autoCreateTime"`
	Edited          time.Time `gorm:"autoUpdateTime"`

	Homeworld *PlanetModel `gorm:"foreignKey:HomeworldID"`
}

// TableName explicitly sets the table name for GORM.
func (SpeciesModel) TableName() string {
	return "species"
}

// CharacterModel mirrors the 'character' table.
type CharacterModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:250;not null"`
	EyeColor    string `gorm:"size:250"`
	SkinColor   string `gorm:"size:250"`
	HairColor   string `gorm:"size:250"`
	Gender      string `gorm:"size:250"`
	Height      string `gorm:"size:250"`
	Mass        string `gorm:"size:250"`
	BirthYear   string `gorm:"size:250"`
	HomeworldID *uint
	FilmID      *uint
	URL         string    `gorm:"size:250;not null;uniqueIndex:idx_character_url"`
	Created     time.Time `gorm:"autoCreateTime"`
	Edited      time.Time `gorm:"autoUpdateTime"`

	Homeworld *PlanetModel `gorm:"foreignKey:HomeworldID"`
	Film      *FilmModel   `gorm:"foreignKey:FilmID"`
}

// TableName explicitly sets the table name for GORM.
func (CharacterModel) TableName() string {
	return "character"
}
