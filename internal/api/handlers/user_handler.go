package handlers

import (
	"cooknextdoor/domain"
	"cooknextdoor/internal/api/presenters"
	"cooknextdoor/pkg/user"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	UserHandler interface {
		Register(c *fiber.Ctx) error
		Login(c *fiber.Ctx) error
	}

	userHandler struct {
		userService user.UserService
		validator   *validator.Validate
	}
)

func NewUserHandler(userService user.UserService, validator *validator.Validate) UserHandler {
	return &userHandler{
		userService: userService,
		validator:   validator,
	}
}

func (h *userHandler) Register(c *fiber.Ctx) error {
	req := new(domain.RegisterRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	res, err := h.userService.Register(c.Context(), *req)
	if err != nil {
		status := statusForError(err)
		return presenters.ErrorResponse(c, status, errorMessage(err, status))
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, res)
}

func (h *userHandler) Login(c *fiber.Ctx) error {
	req := new(domain.LoginRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	res, err := h.userService.Login(c.Context(), *req)
	if err != nil {
		status := statusForError(err)
		return presenters.ErrorResponse(c, status, errorMessage(err, status))
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, res)
}
