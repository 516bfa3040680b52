package entity

import "time"

// Character is a catalog person with an optional homeworld and film.
type Character struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	EyeColor    string    `json:"eye_color"`
	SkinColor   string    `json:"skin_color"`
	HairColor   string    `json:"hair_color"`
	Gender      string    `json:"gender"`
	Height      string    `json:"height"`
	Mass        string    `json:"mass"`
	BirthYear   string    `json:"birth_year"`
	HomeworldID *uint     `json:"homeworld_id"`
	Homeworld   *string   `json:"homeworld"` // Planet name, read only.
	FilmID      *uint     `json:"film_id"`
	Film        *string   `json:"film"` // Film title, read only.
	URL         string    `json:"url"`
	Created     time.Time `json:"created"`
	Edited      time.Time `json:"edited"`
}
