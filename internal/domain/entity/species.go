package entity

import "time"

// Species is a catalog species.
type Species struct {
	ID              uint      `json:"id"`
	Name            string    `json:"name"`
	Classification  string    `json:"classification"`
	Designation     string    `json:"designation"`
	AverageHeight   string    `json:"average_height"`
	AverageLifespan string    `json:"average_lifespan"`
	EyeColors       string    `json:"eye_colors"`
	HairColors      string    `json:"hair_colors"`
	SkinColors      string    `json:"skin_colors"`
	Language        string    `json:"language"`
	HomeworldID     *uint     `json:"homeworld_id"`
	Homeworld       *string   `json:"homeworld"` // Name of the homeworld planet, read only.
	URL             string    `json:"url"`
	FilmIDs         []uint    `json:"film_ids"`
	Created         time.Time `json:"created"`
	Edited          time.Time `json:"edited"`
}
