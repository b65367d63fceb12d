package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/glowuphq/glowup-api/internal/service"
)

// StatusFromError maps service errors onto the API's three client error
// statuses; anything unrecognized is a server error.
func StatusFromError(err error) int {
	switch {
	case errors.Is(err, service.ErrPostNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrInvalidPin):
		return fiber.StatusForbidden
	case errors.Is(err, service.ErrInvalidScore),
		errors.Is(err, service.ErrNotAnImage),
		errors.Is(err, service.ErrUsernameRequired):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
