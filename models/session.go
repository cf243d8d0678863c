package models

import "time"

// Session is a server-side login session. Data holds the JSON-encoded
// identity of the owning user.
type Session struct {
	SID    string    `gorm:"column:sid;type:varchar(36);primaryKey" json:"sid"`
	Data   string    `gorm:"type:text;not null" json:"-"`
	Expire time.Time `gorm:"not null;index" json:"expire"`
}
