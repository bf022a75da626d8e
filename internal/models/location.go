package models

// Location represents a geocoded search query
// DB: locations
type Location struct {
	SearchQuery    string  `gorm:"column:search_query;size:255;not null;index" json:"search_query"`
	FormattedQuery string  `gorm:"column:formatted_query;size:255" json:"formatted_query"`
	Latitude       float64 `gorm:"column:latitude;type:double precision" json:"latitude"`
	Longitude      float64 `gorm:"column:longitude;type:double precision" json:"longitude"`
	ID             int64   `gorm:"column:id;primaryKey" json:"id"`
}

func (Location) TableName() string {
	return "locations"
}
