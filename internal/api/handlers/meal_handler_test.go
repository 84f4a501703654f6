package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"cooknextdoor/domain"
	"cooknextdoor/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMealService struct {
	updateErr error
	deleteErr error
	meals     []domain.MealResponse
}

func (s *stubMealService) CreateMeal(_ context.Context, req domain.CreateMealRequest, _ string) (domain.MealResponse, error) {
	return domain.MealResponse{ID: "m1", Name: req.Name, Price: req.Price, Available: true}, nil
}

func (s *stubMealService) UpdateMeal(_ context.Context, id string, _ domain.UpdateMealRequest, _ string) (domain.MealResponse, error) {
	if s.updateErr != nil {
		return domain.MealResponse{}, s.updateErr
	}
	return domain.MealResponse{ID: id}, nil
}

func (s *stubMealService) DeleteMeal(_ context.Context, _ string, _ string) error {
	return s.deleteErr
}

func (s *stubMealService) GetAllMeals(_ context.Context) ([]domain.MealResponse, error) {
	return s.meals, nil
}

func (s *stubMealService) GetMealsBySeller(_ context.Context, _ string) ([]domain.MealResponse, error) {
	return s.meals, nil
}

func (s *stubMealService) UploadMealImage(_ context.Context, id string, _ domain.UploadMealImageRequest, _ string) (domain.MealResponse, error) {
	return domain.MealResponse{ID: id}, nil
}

func newMealTestApp(svc *stubMealService) *fiber.App {
	utils.InitValidator()
	h := NewMealHandler(svc, utils.Validate)

	app := fiber.New()
	withUser := func(c *fiber.Ctx) error {
		c.Locals("user_id", "11111111-1111-1111-1111-111111111111")
		return c.Next()
	}

	app.Get("/api/meals", h.GetAllMeals)
	app.Post("/api/meals", withUser, h.CreateMeal)
	app.Put("/api/meals/:id", withUser, h.UpdateMeal)
	app.Delete("/api/meals/:id", withUser, h.DeleteMeal)
	return app
}

func TestGetAllMealsPublic(t *testing.T) {
	app := newMealTestApp(&stubMealService{meals: []domain.MealResponse{{ID: "m1", Name: "Soup"}}})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/meals", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var meals []domain.MealResponse
	require.NoError(t, json.Unmarshal(body, &meals))
	require.Len(t, meals, 1)
	assert.Equal(t, "Soup", meals[0].Name)
}

func TestCreateMealReturns201(t *testing.T) {
	app := newMealTestApp(&stubMealService{})

	payload, _ := json.Marshal(domain.CreateMealRequest{
		Name: "Soup", Description: "Hearty", Price: 5.00,
	})
	req := httptest.NewRequest("POST", "/api/meals", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestCreateMealMissingFieldsRejected(t *testing.T) {
	app := newMealTestApp(&stubMealService{})

	req := httptest.NewRequest("POST", "/api/meals", bytes.NewReader([]byte(`{"name":"Soup"}`)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUpdateMealNotOwnerIs401(t *testing.T) {
	app := newMealTestApp(&stubMealService{updateErr: domain.ErrNotAuthorized})

	req := httptest.NewRequest("PUT", "/api/meals/m1", bytes.NewReader([]byte(`{"name":"New"}`)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var parsed map[string]string
	require.NoError(t, json.Unmarshal(body, &parsed))
	assert.NotEmpty(t, parsed["message"])
}

func TestUpdateMealMissingIs404(t *testing.T) {
	app := newMealTestApp(&stubMealService{updateErr: domain.ErrMealNotFound})

	req := httptest.NewRequest("PUT", "/api/meals/nope", bytes.NewReader([]byte(`{"name":"New"}`)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDeleteMealReturnsMessage(t *testing.T) {
	app := newMealTestApp(&stubMealService{})

	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/meals/m1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var parsed map[string]string
	require.NoError(t, json.Unmarshal(body, &parsed))
	assert.Equal(t, domain.MessageSuccessDeleteMeal, parsed["message"])
}
