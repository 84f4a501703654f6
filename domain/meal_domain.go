package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessCreateMeal      = "meal created successfully"
	MessageSuccessUpdateMeal      = "meal updated successfully"
	MessageSuccessDeleteMeal      = "meal deleted successfully"
	MessageSuccessGetMeals        = "meals retrieved successfully"
	MessageSuccessUploadMealImage = "meal image uploaded successfully"

	MessageFailedCreateMeal      = "failed to create meal"
	MessageFailedUpdateMeal      = "failed to update meal"
	MessageFailedDeleteMeal      = "failed to delete meal"
	MessageFailedGetMeals        = "failed to retrieve meals"
	MessageFailedUploadMealImage = "failed to upload meal image"

	ErrMealNotFound = errors.New("meal not found")
)

type (
	CreateMealRequest struct {
		Name        string  `json:"name" validate:"required"`
		Description string  `json:"description" validate:"required"`
		Price       float64 `json:"price" validate:"required,gte=0"`
		Image       string  `json:"image" validate:"omitempty,url"`
	}

	UpdateMealRequest struct {
		Name        string   `json:"name" validate:"omitempty"`
		Description string   `json:"description" validate:"omitempty"`
		Price       *float64 `json:"price" validate:"omitempty,gte=0"`
		Image       string   `json:"image" validate:"omitempty,url"`
		Available   *bool    `json:"available"`
	}

	UploadMealImageRequest struct {
		Image *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	MealSellerResponse struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Location string `json:"location"`
	}

	MealResponse struct {
		ID          string              `json:"id"`
		Name        string              `json:"name"`
		Description string              `json:"description"`
		Price       float64             `json:"price"`
		Image       string              `json:"image,omitempty"`
		Available   bool                `json:"available"`
		Seller      *MealSellerResponse `json:"seller,omitempty"`
		CreatedAt   time.Time           `json:"created_at"`
	}
)
