package models

// Meetup represents an upcoming event near a location
// DB: meetups
type Meetup struct {
	Link         string `gorm:"column:link;type:text" json:"link"`
	Name         string `gorm:"column:name;type:text" json:"name"`
	CreationDate string `gorm:"column:creation_date;size:15" json:"creation_date"`
	Host         string `gorm:"column:host;type:text" json:"host"`
	LocationID   int64  `gorm:"column:location_id;not null;index" json:"location_id"`
}

func (Meetup) TableName() string {
	return "meetups"
}
