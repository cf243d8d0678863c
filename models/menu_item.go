package models

import "time"

type MenuItem struct {
	ID            uint         `gorm:"primaryKey" json:"id"`
	CategoryID    uint         `gorm:"not null;index" json:"category_id"`
	Category      MenuCategory `gorm:"foreignKey:CategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"category"`
	Name          string       `gorm:"type:varchar(200);not null" json:"name"`
	NameEn        string       `gorm:"type:varchar(200)" json:"name_en"`
	Description   string       `gorm:"type:text" json:"description"`
	DescriptionEn string       `gorm:"type:text" json:"description_en"`
	Price         float64      `gorm:"type:decimal(10,2);not null" json:"price"`
	ImageUrl      *string      `gorm:"type:varchar(500)" json:"image_url,omitempty"`
	Active        bool         `gorm:"not null;default:true" json:"active"`
	Featured      bool         `gorm:"not null;default:false" json:"featured"`
	Order         int          `gorm:"column:display_order;not null;default:0" json:"order"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}
