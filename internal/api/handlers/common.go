package handlers

import (
	"errors"

	"cooknextdoor/domain"

	"github.com/gofiber/fiber/v2"
)

// statusForError maps service-level failures onto the HTTP contract:
// 400 for bad input, 401 for ownership or credential failures, 404 for
// missing resources, 500 for everything unexpected.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrEmailAlreadyRegistered),
		errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidOrderStatus),
		errors.Is(err, domain.ErrParseUUID):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrNotAuthorized),
		errors.Is(err, domain.ErrTokenInvalid),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenNotFound):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrMealNotFound),
		errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// errorMessage hides internals behind a generic message for 500s.
func errorMessage(err error, status int) string {
	if status == fiber.StatusInternalServerError {
		return "Server error"
	}
	return err.Error()
}
