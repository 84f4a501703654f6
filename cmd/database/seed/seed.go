package seed

import (
	"fmt"

	"cooknextdoor/entities"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed loads the demo-mode fixtures: three sellers with one meal each, all
// with password "demo1234". Skipped when users already exist.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entities.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	sellers := []struct {
		name     string
		email    string
		location string
		meal     entities.Meal
	}{
		{
			name: "Chef Mario", email: "mario@cooknextdoor.demo", location: "Downtown Kitchen",
			meal: entities.Meal{
				Name:        "Homemade Pizza",
				Description: "Delicious homemade pizza with fresh toppings",
				Price:       12.99,
			},
		},
		{
			name: "Chef Priya", email: "priya@cooknextdoor.demo", location: "Spice Corner",
			meal: entities.Meal{
				Name:        "Chicken Curry",
				Description: "Authentic homemade chicken curry with rice",
				Price:       15.99,
			},
		},
		{
			name: "Baker Sarah", email: "sarah@cooknextdoor.demo", location: "Sweet Delights",
			meal: entities.Meal{
				Name:        "Chocolate Cake",
				Description: "Rich chocolate cake made from scratch",
				Price:       8.99,
			},
		},
	}

	for _, s := range sellers {
		user := &entities.User{
			ID:       uuid.New(),
			Name:     s.name,
			Email:    s.email,
			Password: string(hashed),
			Role:     "seller",
			Location: s.location,
		}
		if err := db.Create(user).Error; err != nil {
			return err
		}

		meal := s.meal
		meal.ID = uuid.New()
		meal.SellerID = user.ID
		meal.Available = true
		if err := db.Create(&meal).Error; err != nil {
			return err
		}
	}

	fmt.Println("Demo data seeded")
	return nil
}
