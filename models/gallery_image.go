package models

import "time"

type GalleryImage struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(200)" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	ImageUrl    string    `gorm:"type:varchar(500);not null" json:"image_url"`
	Category    string    `gorm:"type:varchar(100)" json:"category"`
	Order       int       `gorm:"column:display_order;not null;default:0" json:"order"`
	Featured    bool      `gorm:"not null;default:false" json:"featured"`
	Active      bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
