package models

import "time"

// Customer rows are resolved by email/phone when orders come in; neither
// column is unique, resolution is first match wins.
type Customer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Email     string    `gorm:"type:varchar(255)" json:"email"`
	Phone     string    `gorm:"type:varchar(20)" json:"phone"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}
