package handlers

import (
	"cooknextdoor/domain"
	"cooknextdoor/internal/api/presenters"
	"cooknextdoor/pkg/meal"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MealHandler interface {
		GetAllMeals(c *fiber.Ctx) error
		GetSellerMeals(c *fiber.Ctx) error
		CreateMeal(c *fiber.Ctx) error
		UpdateMeal(c *fiber.Ctx) error
		DeleteMeal(c *fiber.Ctx) error
		UploadMealImage(c *fiber.Ctx) error
	}

	mealHandler struct {
		mealService meal.MealService
		validator   *validator.Validate
	}
)

func NewMealHandler(mealService meal.MealService, validator *validator.Validate) MealHandler {
	return &mealHandler{
		mealService: mealService,
		validator:   validator,
	}
}

func (h *mealHandler) GetAllMeals(c *fiber.Ctx) error {
	meals, err := h.mealService.GetAllMeals(c.Context())
	if err != nil {
		status := statusForError(err)
		return presenters.ErrorResponse(c, status, errorMessage(err, status))
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, meals)
}

func (h *mealHandler) GetSellerMeals(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	meals, err := h.mealService.GetMealsBySeller(c.Context(), userID)
	if err != nil {
		status := statusForError(err)
		return presenters.ErrorResponse(c, status, errorMessage(err, status))
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, meals)
}

func (h *mealHandler) CreateMeal(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateMealRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	res, err := h.mealService.CreateMeal(c.Context(), *req, userID)
	if err != nil {
		status := statusForError(err)
		return presenters.ErrorResponse(c, status, errorMessage(err, status))
	}

	return presenters.SuccessResponse(c, fiber.StatusCreated, res)
}

func (h *mealHandler) UpdateMeal(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	mealID := c.Params("id")
	req := new(domain.UpdateMealRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	res, err := h.mealService.UpdateMeal(c.Context(), mealID, *req, userID)
	if err != nil {
		status := statusForError(err)
		return presenters.ErrorResponse(c, status, errorMessage(err, status))
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, res)
}

func (h *mealHandler) DeleteMeal(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	mealID := c.Params("id")

	if err := h.mealService.DeleteMeal(c.Context(), mealID, userID); err != nil {
		status := statusForError(err)
		return presenters.ErrorResponse(c, status, errorMessage(err, status))
	}

	return presenters.MessageResponse(c, fiber.StatusOK, domain.MessageSuccessDeleteMeal)
}

func (h *mealHandler) UploadMealImage(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	mealID := c.Params("id")
	req := new(domain.UploadMealImageRequest)

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest)
	}
	req.Image = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	res, err := h.mealService.UploadMealImage(c.Context(), mealID, *req, userID)
	if err != nil {
		status := statusForError(err)
		return presenters.ErrorResponse(c, status, errorMessage(err, status))
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, res)
}
