package meal

import (
	"context"
	"errors"
	"fmt"

	"cooknextdoor/domain"
	"cooknextdoor/entities"
	"cooknextdoor/internal/utils/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	MealService interface {
		CreateMeal(ctx context.Context, req domain.CreateMealRequest, userID string) (domain.MealResponse, error)
		UpdateMeal(ctx context.Context, id string, req domain.UpdateMealRequest, userID string) (domain.MealResponse, error)
		DeleteMeal(ctx context.Context, id string, userID string) error
		GetAllMeals(ctx context.Context) ([]domain.MealResponse, error)
		GetMealsBySeller(ctx context.Context, userID string) ([]domain.MealResponse, error)
		UploadMealImage(ctx context.Context, id string, req domain.UploadMealImageRequest, userID string) (domain.MealResponse, error)
	}

	mealService struct {
		mealRepository MealRepository
		s3             storage.AwsS3
	}
)

func NewMealService(mealRepository MealRepository, s3 storage.AwsS3) MealService {
	return &mealService{
		mealRepository: mealRepository,
		s3:             s3,
	}
}

func (s *mealService) CreateMeal(ctx context.Context, req domain.CreateMealRequest, userID string) (domain.MealResponse, error) {
	sellerUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.MealResponse{}, domain.ErrParseUUID
	}

	meal := &entities.Meal{
		ID:          uuid.New(),
		SellerID:    sellerUUID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.Image,
		Available:   true,
	}

	if err := s.mealRepository.CreateMeal(ctx, meal); err != nil {
		return domain.MealResponse{}, err
	}

	return mealResponse(meal), nil
}

func (s *mealService) UpdateMeal(ctx context.Context, id string, req domain.UpdateMealRequest, userID string) (domain.MealResponse, error) {
	meal, err := s.ownedMeal(ctx, id, userID)
	if err != nil {
		return domain.MealResponse{}, err
	}

	if req.Name != "" {
		meal.Name = req.Name
	}
	if req.Description != "" {
		meal.Description = req.Description
	}
	if req.Price != nil {
		meal.Price = *req.Price
	}
	if req.Image != "" {
		meal.ImageURL = req.Image
	}
	if req.Available != nil {
		meal.Available = *req.Available
	}

	if err := s.mealRepository.UpdateMeal(ctx, meal); err != nil {
		return domain.MealResponse{}, err
	}

	return mealResponse(meal), nil
}

func (s *mealService) DeleteMeal(ctx context.Context, id string, userID string) error {
	meal, err := s.ownedMeal(ctx, id, userID)
	if err != nil {
		return err
	}

	if meal.ImageURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(meal.ImageURL)
		if objectKey != meal.ImageURL {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.mealRepository.DeleteMeal(ctx, id)
}

func (s *mealService) GetAllMeals(ctx context.Context) ([]domain.MealResponse, error) {
	meals, err := s.mealRepository.GetAllMeals(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]domain.MealResponse, 0, len(meals))
	for _, m := range meals {
		res = append(res, mealResponse(m))
	}
	return res, nil
}

func (s *mealService) GetMealsBySeller(ctx context.Context, userID string) ([]domain.MealResponse, error) {
	meals, err := s.mealRepository.GetMealsBySeller(ctx, userID)
	if err != nil {
		return nil, err
	}

	res := make([]domain.MealResponse, 0, len(meals))
	for _, m := range meals {
		res = append(res, mealResponse(m))
	}
	return res, nil
}

func (s *mealService) UploadMealImage(ctx context.Context, id string, req domain.UploadMealImageRequest, userID string) (domain.MealResponse, error) {
	meal, err := s.ownedMeal(ctx, id, userID)
	if err != nil {
		return domain.MealResponse{}, err
	}

	fileName := fmt.Sprintf("meal-%s", meal.ID.String())
	objectKey, err := s.s3.UploadFile(fileName, req.Image, "meals", storage.AllowImage...)
	if err != nil {
		return domain.MealResponse{}, err
	}

	meal.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	if err := s.mealRepository.UpdateMeal(ctx, meal); err != nil {
		return domain.MealResponse{}, err
	}

	return mealResponse(meal), nil
}

// ownedMeal loads a meal and enforces the ownership rule shared by every
// mutating catalog operation.
func (s *mealService) ownedMeal(ctx context.Context, id string, userID string) (*entities.Meal, error) {
	meal, err := s.mealRepository.GetMealByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMealNotFound
		}
		return nil, err
	}

	if !domain.Owns(userID, meal) {
		return nil, domain.ErrNotAuthorized
	}
	return meal, nil
}

func mealResponse(m *entities.Meal) domain.MealResponse {
	res := domain.MealResponse{
		ID:          m.ID.String(),
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Image:       m.ImageURL,
		Available:   m.Available,
		CreatedAt:   m.CreatedAt,
	}
	if m.Seller != nil {
		res.Seller = &domain.MealSellerResponse{
			ID:       m.Seller.ID.String(),
			Name:     m.Seller.Name,
			Location: m.Seller.Location,
		}
	}
	return res
}
