package models

import "time"

const (
	MessageNew     = "new"
	MessageRead    = "read"
	MessageReplied = "replied"
)

var messageStatuses = map[string]bool{
	MessageNew:     true,
	MessageRead:    true,
	MessageReplied: true,
}

// ValidMessageStatus reports whether s is one of the declared contact
// message statuses.
func ValidMessageStatus(s string) bool {
	return messageStatuses[s]
}

type ContactMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(200);not null" json:"name"`
	Email     string    `gorm:"type:varchar(200);not null" json:"email"`
	Phone     *string   `gorm:"type:varchar(50)" json:"phone,omitempty"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Status    string    `gorm:"type:varchar(20);not null;default:'new'" json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
