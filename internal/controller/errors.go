package controller

import (
	"errors"

	"github.com/benbeisheim/chesstutor-backend/internal/chess"
	"github.com/benbeisheim/chesstutor-backend/internal/model"
	"github.com/benbeisheim/chesstutor-backend/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, model.ErrNotAuthorized):
		return fiber.StatusForbidden
	case errors.Is(err, model.ErrNotYourTurn), errors.Is(err, model.ErrGameOver):
		return fiber.StatusConflict
	case errors.Is(err, chess.ErrInvalidSquare),
		errors.Is(err, chess.ErrNoPiece),
		errors.Is(err, chess.ErrIllegalMove),
		errors.Is(err, chess.ErrInvalidPromotion):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

func sendError(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	if status == fiber.StatusInternalServerError {
		log.Errorf("%s %s: %v", c.Method(), c.Path(), err)
		return c.Status(status).JSON(fiber.Map{
			"error": "internal server error",
		})
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
