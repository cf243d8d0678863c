package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID              string  `gorm:"type:varchar(36);primaryKey" json:"id"`
	Email           string  `gorm:"type:varchar(200);unique;not null" json:"email"`
	Username        string  `gorm:"type:varchar(100)" json:"username"`
	Password        string  `gorm:"type:varchar(255)" json:"-"`
	FirstName       string  `gorm:"type:varchar(100)" json:"first_name"`
	LastName        string  `gorm:"type:varchar(100)" json:"last_name"`
	ProfileImageUrl *string `gorm:"type:varchar(500)" json:"profile_image_url,omitempty"`
	Phone           *string `gorm:"type:varchar(50)" json:"phone,omitempty"`
	Role            string  `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
