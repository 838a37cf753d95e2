package models

// Review, uma avaliação publicada na vitrine.
type Review struct {
	Name    string `json:"name"`
	Date    string `json:"date"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// RatingBucket, a fatia de avaliações com uma certa nota.
type RatingBucket struct {
	Stars      int     `json:"stars"`
	Percentage float64 `json:"percentage"`
}
