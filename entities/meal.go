package entities

import (
	"github.com/google/uuid"
)

type Meal struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SellerID    uuid.UUID `json:"seller_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"image,omitempty"`
	Available   bool      `gorm:"default:true" json:"available"`

	Seller *User `gorm:"foreignKey:SellerID" json:"seller,omitempty"`
	Timestamp
}

func (m *Meal) OwnerID() uuid.UUID {
	return m.SellerID
}
