package models

// Movie represents a movie matched against a location's search query
// DB: movies
type Movie struct {
	Title        string  `gorm:"column:title;type:text" json:"title"`
	ReleasedOn   string  `gorm:"column:released_on;size:10" json:"released_on"`
	TotalVotes   int     `gorm:"column:total_votes" json:"total_votes"`
	AverageVotes float64 `gorm:"column:average_votes;type:double precision" json:"average_votes"`
	Popularity   float64 `gorm:"column:popularity;type:double precision" json:"popularity"`
	ImageURL     string  `gorm:"column:image_url;type:text" json:"image_url"`
	Overview     string  `gorm:"column:overview;type:text" json:"overview"`
	LocationID   int64   `gorm:"column:location_id;not null;index" json:"location_id"`
}

func (Movie) TableName() string {
	return "movies"
}
