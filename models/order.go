package models

import "time"

// Order is created together with its OrderItems as one aggregate and is
// immutable afterwards. Items never exist without their parent order.
type Order struct {
	ID           uint        `json:"id" gorm:"primaryKey"`
	CustomerID   uint        `json:"customerId" gorm:"not null"`
	Customer     Customer    `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Datetime     time.Time   `json:"datetime"`
	TotalPrice   float64     `json:"totalPrice"`
	Discount     float64     `json:"discount"`
	MainFeatures string      `json:"mainFeatures"`
	Items        []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

type OrderItem struct {
	ID         uint     `json:"id" gorm:"primaryKey"`
	OrderID    uint     `json:"orderId" gorm:"not null"`
	MenuItemID uint     `json:"menuItemId" gorm:"not null"`
	MenuItem   MenuItem `json:"menuItem,omitempty" gorm:"foreignKey:MenuItemID"`
	Price      float64  `json:"price" gorm:"not null"` // snapshot price at time of order
}
