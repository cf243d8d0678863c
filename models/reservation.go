package models

import "time"

const (
	ReservationPending   = "pending"
	ReservationConfirmed = "confirmed"
	ReservationCancelled = "cancelled"
	ReservationCompleted = "completed"
)

var reservationStatuses = map[string]bool{
	ReservationPending:   true,
	ReservationConfirmed: true,
	ReservationCancelled: true,
	ReservationCompleted: true,
}

// ValidReservationStatus reports whether s is one of the declared
// reservation statuses.
func ValidReservationStatus(s string) bool {
	return reservationStatuses[s]
}

type Reservation struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       *string   `gorm:"type:varchar(36);index" json:"user_id,omitempty"`
	User         *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Name         string    `gorm:"type:varchar(200);not null" json:"name"`
	Phone        string    `gorm:"type:varchar(50);not null" json:"phone"`
	Email        *string   `gorm:"type:varchar(200)" json:"email,omitempty"`
	Date         time.Time `gorm:"not null" json:"date"`
	Time         string    `gorm:"type:varchar(10);not null" json:"time"`
	Guests       int       `gorm:"not null" json:"guests"`
	Notes        *string   `gorm:"type:text" json:"notes,omitempty"`
	Status       string    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	WhatsappSent bool      `gorm:"not null;default:false" json:"whatsapp_sent"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
