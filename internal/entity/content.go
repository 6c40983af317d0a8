package entity

import "time"

// Event is a past or upcoming hiring event shown on the public site.
type Event struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:150;not null" json:"title"`
	EventDate   string    `gorm:"size:50;not null" json:"event_date"`
	Location    string    `gorm:"size:150" json:"location"`
	Description string    `gorm:"type:text" json:"description"`
	Featured    bool      `gorm:"default:false" json:"featured"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// Program is one of the organization's community programs.
type Program struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:150;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// ImpactStat is a headline number for the stats section.
type ImpactStat struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Label     string    `gorm:"size:100;not null" json:"label"`
	Value     string    `gorm:"size:50;not null" json:"value"`
	SortOrder int       `gorm:"default:0" json:"sort_order"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// GalleryImage is a photo in the public gallery, stored in Cloudinary.
type GalleryImage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:150;not null" json:"title"`
	AltText   string    `gorm:"size:255" json:"alt_text"`
	ImageURL  string    `gorm:"type:text;not null" json:"image_url"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
