package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name     string    `json:"name"`
	Email    string    `gorm:"uniqueIndex" json:"email"`
	Password string    `json:"-"`
	Role     string    `json:"role"` // "buyer", "seller"
	Location string    `json:"location"`

	Meals []*Meal `gorm:"foreignKey:SellerID" json:"-"`
	Timestamp
}
