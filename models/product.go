package models

import "time"

type Product struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Category    string    `gorm:"type:varchar(100)" json:"category"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	ImageURL    string    `gorm:"column:image_url;type:varchar(255)" json:"image_url"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}
