package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/freelancer-crm/internal/application/dto"
	"github.com/jhoicas/freelancer-crm/internal/domain"
)

// respondError traduce un error de dominio a status + ErrorResponse.
func respondError(c *fiber.Ctx, err error) error {
	status, code := mapError(err)
	msg := err.Error()
	if status == fiber.StatusInternalServerError {
		msg = "error interno"
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

func mapError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidEnum),
		errors.Is(err, domain.ErrOutOfRange):
		return fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusConflict, "DUPLICATE"
	case errors.Is(err, domain.ErrMissingReference):
		return fiber.StatusConflict, "MISSING_REFERENCE"
	default:
		return fiber.StatusInternalServerError, "INTERNAL"
	}
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
