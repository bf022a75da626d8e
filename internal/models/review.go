package models

// Review represents a business returned by the review provider
// DB: yelps
type Review struct {
	URL        string  `gorm:"column:url;type:text" json:"url"`
	Name       string  `gorm:"column:name;type:text" json:"name"`
	Rating     float64 `gorm:"column:rating;type:double precision" json:"rating"`
	Price      string  `gorm:"column:price;size:10" json:"price"`
	ImageURL   string  `gorm:"column:image_url;type:text" json:"image_url"`
	LocationID int64   `gorm:"column:location_id;not null;index" json:"location_id"`
}

func (Review) TableName() string {
	return "yelps"
}
