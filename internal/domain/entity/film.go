package entity

import "time"

// Film is a catalog film. Favorites display it by title.
type Film struct {
	ID           uint       `json:"id"`
	Title        string     `json:"title"`
	EpisodeID    int        `json:"episode_id"`
	Director     string     `json:"director"`
	OpeningCrawl string     `json:"opening_crawl"`
	Producer     string     `json:"producer"`
	ReleaseDate  *time.Time `json:"release_date"`
	URL          string     `json:"url"`
	Created      time.Time  `json:"created"`
	Edited       time.Time  `json:"edited"`
}
