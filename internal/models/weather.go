package models

// Forecast represents one day of a location's forecast
// DB: weathers
type Forecast struct {
	Forecast   string `gorm:"column:forecast;type:text" json:"forecast"`
	Time       string `gorm:"column:time;size:15" json:"time"`
	LocationID int64  `gorm:"column:location_id;not null;index" json:"location_id"`
}

func (Forecast) TableName() string {
	return "weathers"
}
