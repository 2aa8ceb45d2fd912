package models

// OrderItem carries a snapshot of the product price at order-creation time;
// later catalog changes never touch it.
type OrderItem struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	OrderID uint `gorm:"not null;index" json:"order_id"`
	// Omitting Order field from JSON to avoid recursive nesting
	Order     Order   `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	ProductID uint    `gorm:"not null;index" json:"product_id"`
	Product   Product `gorm:"foreignKey:ProductID;references:ID" json:"-"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	Price     float64 `gorm:"type:decimal(10,2);not null" json:"price"`
}
