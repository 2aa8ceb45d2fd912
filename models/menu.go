package models

import "time"

type Menu struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	IsVisible   bool      `json:"is_visible"`
	Category    string    `gorm:"type:varchar(100)" json:"category"`
	ImageURL    string    `gorm:"column:image_url;type:varchar(255)" json:"image_url"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	Products    []Product `gorm:"many2many:menu_products;constraint:OnDelete:CASCADE" json:"products"`
}
