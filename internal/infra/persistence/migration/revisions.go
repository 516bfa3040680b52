package migration

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Revision ids, oldest first.
const (
	RevisionCatalog          = "0001_catalog"
	RevisionUsers            = "0002_users"
	RevisionFavorites        = "0003_favoritos"
	RevisionFavoritesUnique  = "0004_favoritos_unique"
	RevisionFavoritesCreated = "0005_favoritos_created_at"
)

// Revisions returns the schema history of the catalog.
func Revisions() []Revision {
	return []Revision{
		{
			ID:          RevisionCatalog,
			Description: "catalog tables and film association tables",
			Up: func(tx *gorm.DB) error {
				return tx.Migrator().CreateTable(
					&planetV1{}, &filmV1{}, &starshipV1{}, &vehicleV1{}, &speciesV1{}, &characterV1{},
					&starshipFilmV1{}, &vehicleFilmV1{}, &speciesFilmV1{}, &filmPlanetV1{},
				)
			},
			Down: func(tx *gorm.DB) error {
				// Children first so no foreign key is left pointing at a dropped table.
				return dropTables(tx,
					&starshipFilmV1{}, &vehicleFilmV1{}, &speciesFilmV1{}, &filmPlanetV1{},
					&characterV1{}, &speciesV1{}, &vehicleV1{}, &starshipV1{}, &filmV1{}, &planetV1{},
				)
			},
		},
		{
			ID:           RevisionUsers,
			DownRevision: RevisionCatalog,
			Description:  "user table",
			Up: func(tx *gorm.DB) error {
				return tx.Migrator().CreateTable(&userV2{})
			},
			Down: func(tx *gorm.DB) error {
				return dropTables(tx, &userV2{})
			},
		},
		{
			ID:           RevisionFavorites,
			DownRevision: RevisionUsers,
			Description:  "favoritos with one target per row",
			Up: func(tx *gorm.DB) error {
				return tx.Migrator().CreateTable(&favoriteV3{})
			},
			Down: func(tx *gorm.DB) error {
				return dropTables(tx, &favoriteV3{})
			},
		},
		{
			ID:           RevisionFavoritesUnique,
			DownRevision: RevisionFavorites,
			Description:  "favoritos unique per user and target",
			Up: func(tx *gorm.DB) error {
				for _, name := range favoriteUniqueIndexes {
					if err := tx.Migrator().CreateIndex(&favoriteV4{}, name); err != nil {
						return err
					}
				}

				return nil
			},
			Down: func(tx *gorm.DB) error {
				for _, name := range favoriteUniqueIndexes {
					if err := tx.Migrator().DropIndex(&favoriteV4{}, name); err != nil {
						return err
					}
				}

				return nil
			},
		},
		{
			ID:           RevisionFavoritesCreated,
			DownRevision: RevisionFavoritesUnique,
			Description:  "favoritos.created_at",
			Up: func(tx *gorm.DB) error {
				return tx.Migrator().AddColumn(&favoriteV5{}, "CreatedAt")
			},
			Down: func(tx *gorm.DB) error {
				// Plain ALTER: the SQLite migrator would rebuild the table and lose the check constraint.
				return tx.Exec("ALTER TABLE ? DROP COLUMN ?",
					clause.Table{Name: favoriteV5{}.TableName()}, clause.Column{Name: "created_at"}).Error
			},
		},
	}
}

func dropTables(tx *gorm.DB, tables ...any) error {
	for _, table := range tables {
		if err := tx.Migrator().DropTable(table); err != nil {
			return err
		}
	}

	return nil
}

// Snapshots of each table as its revision leaves it.
// They must not follow later changes to the runtime models.

type planetV1 struct {
	ID             uint   `gorm:"primaryKey"`
	Name           string `gorm:"size:250;not null"`
	Diameter       string `gorm:"size:250"`
	RotationPeriod string `gorm:"size:250"`
	OrbitalPeriod  string `gorm:"size:250"`
	Gravity        string `gorm:"size:250"`
	Population     string `gorm:"size:250"`
	Climate        string `gorm:"size:250"`
	Terrain        string `gorm:"size:250"`
	SurfaceWater   string `gorm:"size:250"`
	URL            string `gorm:"size:250;not null;uniqueIndex:idx_planet_url"`
	Created        time.Time
	Edited         time.Time
}

func (planetV1) TableName() string { return "planet" }

type filmV1 struct {
	ID           uint   `gorm:"primaryKey"`
	Title        string `gorm:"size:250;not null"`
	EpisodeID    int    `gorm:"not null"`
	Director     string `gorm:"size:250"`
	OpeningCrawl string `gorm:"type:text"`
	Producer     string `gorm:"size:250"`
	ReleaseDate  *time.Time
	URL          string `gorm:"size:250;not null;uniqueIndex:idx_film_url"`
	Created      time.Time
	Edited       time.Time
}

func (filmV1) TableName() string { return "film" }

type starshipV1 struct {
	ID                   uint   `gorm:"primaryKey"`
	Name                 string `gorm:"size:250;not null"`
	Model                string `gorm:"size:250"`
	StarshipClass        string `gorm:"size:250"`
	Manufacturer         string `gorm:"size:250"`
	CostInCredits        string `gorm:"size:250"`
	Length               string `gorm:"size:250"`
	Crew                 string `gorm:"size:250"`
	Passengers           string `gorm:"size:250"`
	MaxAtmospheringSpeed string `gorm:"size:250"`
	HyperdriveRating     string `gorm:"size:250"`
	MGLT                 string `gorm:"column:mglt;size:250"`
	CargoCapacity        string `gorm:"size:250"`
	Consumables          string `gorm:"size:250"`
	URL                  string `gorm:"size:250;not null;uniqueIndex:idx_starship_url"`
	Created              time.Time
	Edited               time.Time
}

func (starshipV1) TableName() string { return "starship" }

type vehicleV1 struct {
	ID                   uint   `gorm:"primaryKey"`
	Name                 string `gorm:"size:250;not null"`
	Model                string `gorm:"size:250;not null"`
	VehicleClass         string `gorm:"size:250"`
	Manufacturer         string `gorm:"size:250"`
	CostInCredits        string `gorm:"size:250"`
	Length               string `gorm:"size:250"`
	Crew                 string `gorm:"size:250"`
	Passengers           string `gorm:"size:250;not null"`
	MaxAtmospheringSpeed string `gorm:"size:250"`
	CargoCapacity        string `gorm:"size:250"`
	Consumables          string `gorm:"size:250"`
	URL                  string `gorm:"size:250;not null;uniqueIndex:idx_vehicle_url"`
	Created              time.Time
	Edited               time.Time
}

func (vehicleV1) TableName() string { return "vehicle" }

type speciesV1 struct {
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
	URL             string `gorm:"size:250;not null;uniqueIndex:idx_species_url"`
	Created         time.Time
	Edited          time.Time

	Homeworld *planetV1 `gorm:"foreignKey:HomeworldID;constraint:OnDelete:SET NULL"`
}

func (speciesV1) TableName() string { return "species" }

type characterV1 struct {
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
	URL         string `gorm:"size:250;not null;uniqueIndex:idx_character_url"`
	Created     time.Time
	Edited      time.Time

	Homeworld *planetV1 `gorm:"foreignKey:HomeworldID;constraint:OnDelete:SET NULL"`
	Film      *filmV1   `gorm:"foreignKey:FilmID;constraint:OnDelete:SET NULL"`
}

func (characterV1) TableName() string { return "character" }

type starshipFilmV1 struct {
	StarshipID uint `gorm:"primaryKey;autoIncrement:false"`
	FilmID     uint `gorm:"primaryKey;autoIncrement:false"`

	Starship *starshipV1 `gorm:"foreignKey:StarshipID;constraint:OnDelete:CASCADE"`
	Film     *filmV1     `gorm:"foreignKey:FilmID;constraint:OnDelete:CASCADE"`
}

func (starshipFilmV1) TableName() string { return "starships_films" }

type vehicleFilmV1 struct {
	VehicleID uint `gorm:"primaryKey;autoIncrement:false"`
	FilmID    uint `gorm:"primaryKey;autoIncrement:false"`

	Vehicle *vehicleV1 `gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE"`
	Film    *filmV1    `gorm:"foreignKey:FilmID;constraint:OnDelete:CASCADE"`
}

func (vehicleFilmV1) TableName() string { return "vehicles_films" }

type speciesFilmV1 struct {
	SpeciesID uint `gorm:"primaryKey;autoIncrement:false"`
	FilmID    uint `gorm:"primaryKey;autoIncrement:false"`

	Species *speciesV1 `gorm:"foreignKey:SpeciesID;constraint:OnDelete:CASCADE"`
	Film    *filmV1    `gorm:"foreignKey:FilmID;constraint:OnDelete:CASCADE"`
}

func (speciesFilmV1) TableName() string { return "species_films" }

type filmPlanetV1 struct {
	FilmID   uint `gorm:"primaryKey;autoIncrement:false"`
	PlanetID uint `gorm:"primaryKey;autoIncrement:false"`

	Film   *filmV1   `gorm:"foreignKey:FilmID;constraint:OnDelete:CASCADE"`
	Planet *planetV1 `gorm:"foreignKey:PlanetID;constraint:OnDelete:CASCADE"`
}

func (filmPlanetV1) TableName() string { return "films_planets" }

type userV2 struct {
	ID       uint   `gorm:"primaryKey"`
	Email    string `gorm:"size:120;not null;uniqueIndex:idx_user_email"`
	Username string `gorm:"size:120;not null;uniqueIndex:idx_user_username"`
	Password string `gorm:"size:255;not null"`
	Name     string `gorm:"size:120"`
	LastName string `gorm:"size:120"`
	IsActive bool   `gorm:"not null;default:true"`
}

func (userV2) TableName() string { return "user" }

// favoriteV3 carries the check that exactly one target column is set.
type favoriteV3 struct {
	ID          uint `gorm:"primaryKey"`
	UserID      uint `gorm:"not null;check:chk_favoritos_single_target,(CASE WHEN film_id IS NULL THEN 0 ELSE 1 END) + (CASE WHEN specie_id IS NULL THEN 0 ELSE 1 END) + (CASE WHEN starship_id IS NULL THEN 0 ELSE 1 END) + (CASE WHEN vehicle_id IS NULL THEN 0 ELSE 1 END) + (CASE WHEN character_id IS NULL THEN 0 ELSE 1 END) + (CASE WHEN planet_id IS NULL THEN 0 ELSE 1 END) = 1"`
	FilmID      *uint
	SpecieID    *uint `gorm:"column:specie_id"`
	StarshipID  *uint
	VehicleID   *uint
	CharacterID *uint
	PlanetID    *uint

	User      *userV2      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Film      *filmV1      `gorm:"foreignKey:FilmID;constraint:OnDelete:CASCADE"`
	Specie    *speciesV1   `gorm:"foreignKey:SpecieID;constraint:OnDelete:CASCADE"`
	Starship  *starshipV1  `gorm:"foreignKey:StarshipID;constraint:OnDelete:CASCADE"`
	Vehicle   *vehicleV1   `gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE"`
	Character *characterV1 `gorm:"foreignKey:CharacterID;constraint:OnDelete:CASCADE"`
	Planet    *planetV1    `gorm:"foreignKey:PlanetID;constraint:OnDelete:CASCADE"`
}

func (favoriteV3) TableName() string { return "favoritos" }

var favoriteUniqueIndexes = []string{
	"idx_favoritos_user_film",
	"idx_favoritos_user_specie",
	"idx_favoritos_user_starship",
	"idx_favoritos_user_vehicle",
	"idx_favoritos_user_character",
	"idx_favoritos_user_planet",
}

type favoriteV4 struct {
	ID          uint  `gorm:"primaryKey"`
	UserID      uint  `gorm:"not null;uniqueIndex:idx_favoritos_user_film;uniqueIndex:idx_favoritos_user_specie;uniqueIndex:idx_favoritos_user_starship;uniqueIndex:idx_favoritos_user_vehicle;uniqueIndex:idx_favoritos_user_character;uniqueIndex:idx_favoritos_user_planet"`
	FilmID      *uint `gorm:"uniqueIndex:idx_favoritos_user_film"`
	SpecieID    *uint `gorm:"column:specie_id;uniqueIndex:idx_favoritos_user_specie"`
	StarshipID  *uint `gorm:"uniqueIndex:idx_favoritos_user_starship"`
	VehicleID   *uint `gorm:"uniqueIndex:idx_favoritos_user_vehicle"`
	CharacterID *uint `gorm:"uniqueIndex:idx_favoritos_user_character"`
	PlanetID    *uint `gorm:"uniqueIndex:idx_favoritos_user_planet"`
}

func (favoriteV4) TableName() string { return "favoritos" }

type favoriteV5 struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt *time.Time
}

func (favoriteV5) TableName() string { return "favoritos" }
