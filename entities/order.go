package entities

import (
	"github.com/google/uuid"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusDelivered = "delivered"
)

type Order struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	BuyerID    uuid.UUID `json:"buyer_id"`
	SellerID   uuid.UUID `json:"seller_id"`
	MealID     uuid.UUID `json:"meal_id"`
	Quantity   int       `gorm:"default:1" json:"quantity"`
	TotalPrice float64   `json:"total_price"`
	Status     string    `gorm:"default:pending" json:"status"` // "pending", "confirmed", "delivered"

	Buyer  *User `gorm:"foreignKey:BuyerID" json:"buyer,omitempty"`
	Seller *User `gorm:"foreignKey:SellerID" json:"seller,omitempty"`
	Meal   *Meal `gorm:"foreignKey:MealID" json:"meal,omitempty"`
	Timestamp
}

func (o *Order) OwnerID() uuid.UUID {
	return o.SellerID
}

// ValidOrderStatus reports whether s is one of the three order statuses.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusDelivered:
		return true
	}
	return false
}
