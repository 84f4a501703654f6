package meal

import (
	"context"

	"cooknextdoor/entities"

	"gorm.io/gorm"
)

type (
	MealRepository interface {
		CreateMeal(ctx context.Context, meal *entities.Meal) error
		GetMealByID(ctx context.Context, id string) (*entities.Meal, error)
		UpdateMeal(ctx context.Context, meal *entities.Meal) error
		DeleteMeal(ctx context.Context, id string) error
		GetAllMeals(ctx context.Context) ([]*entities.Meal, error)
		GetMealsBySeller(ctx context.Context, sellerID string) ([]*entities.Meal, error)
		CountMealsBySeller(ctx context.Context, sellerID string) (int64, error)
	}

	mealRepository struct {
		db *gorm.DB
	}
)

func NewMealRepository(db *gorm.DB) MealRepository {
	return &mealRepository{db: db}
}

func (r *mealRepository) CreateMeal(ctx context.Context, meal *entities.Meal) error {
	return r.db.WithContext(ctx).Create(meal).Error
}

func (r *mealRepository) GetMealByID(ctx context.Context, id string) (*entities.Meal, error) {
	var meal entities.Meal
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

func (r *mealRepository) UpdateMeal(ctx context.Context, meal *entities.Meal) error {
	return r.db.WithContext(ctx).Save(meal).Error
}

func (r *mealRepository) DeleteMeal(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Meal{}).Error
}

func (r *mealRepository) GetAllMeals(ctx context.Context) ([]*entities.Meal, error) {
	var meals []*entities.Meal
	if err := r.db.WithContext(ctx).
		Preload("Seller").
		Order("created_at desc").
		Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

func (r *mealRepository) GetMealsBySeller(ctx context.Context, sellerID string) ([]*entities.Meal, error) {
	var meals []*entities.Meal
	if err := r.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("created_at desc").
		Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

func (r *mealRepository) CountMealsBySeller(ctx context.Context, sellerID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Meal{}).
		Where("seller_id = ?", sellerID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
