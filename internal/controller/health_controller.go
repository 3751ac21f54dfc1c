package controller

import (
	"github.com/benbeisheim/chesstutor-backend/internal/service"
	"github.com/gofiber/fiber/v2"
)

type HealthController struct {
	gameService *service.GameService
	environment string
}

func NewHealthController(gameService *service.GameService, environment string) *HealthController {
	return &HealthController{gameService: gameService, environment: environment}
}

func (hc *HealthController) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Chess Tutor API is running!",
	})
}

func (hc *HealthController) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":      "healthy",
		"environment": hc.environment,
		"games":       hc.gameService.GameCount(),
	})
}
