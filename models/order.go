package models

import "time"

const (
	OrderStatusPending   = "pending"
	OrderStatusPreparing = "preparing"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

type Order struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	CustomerID  uint        `gorm:"index" json:"customer_id"`
	Customer    Customer    `gorm:"foreignKey:CustomerID" json:"-"`
	TotalAmount float64     `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	Status      string      `gorm:"type:varchar(20);not null" json:"status"`
	OrderDate   time.Time   `gorm:"not null" json:"order_date"`
	OrderItems  []OrderItem `gorm:"foreignKey:OrderID" json:"order_items,omitempty"`
}
