package controller

import (
	"fmt"

	"github.com/benbeisheim/chesstutor-backend/internal/chess"
	"github.com/benbeisheim/chesstutor-backend/internal/middleware"
	"github.com/benbeisheim/chesstutor-backend/internal/model"
	"github.com/benbeisheim/chesstutor-backend/internal/service"
	"github.com/gofiber/fiber/v2"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

// RegisterRoutes mounts the game endpoints on router.
func (gc *GameController) RegisterRoutes(router fiber.Router) {
	router.Post("/", gc.CreateGame)
	router.Get("/:gameId", gc.GetGameState)
	router.Get("/:gameId/piece/:square", gc.GetPiece)
	router.Get("/:gameId/moves/:square", gc.GetMoves)
	router.Post("/:gameId/move", gc.MakeMove)
	router.Get("/:gameId/status", gc.GetStatus)
	router.Delete("/:gameId", gc.DeleteGame)
}

type moveBody struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Promotion string `json:"promotion"`
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	state := gc.gameService.CreateGame(middleware.PlayerID(c))
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Game created",
		"gameId":  state.ID,
		"state":   state,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	state, err := gc.gameService.GetGameState(c.Params("gameId"))
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(state)
}

func (gc *GameController) GetPiece(c *fiber.Ctx) error {
	sq, err := chess.ParseSquare(c.Params("square"))
	if err != nil {
		return sendError(c, err)
	}
	piece, ok, err := gc.gameService.GetPiece(c.Params("gameId"), sq)
	if err != nil {
		return sendError(c, err)
	}
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": fmt.Sprintf("no piece on %s", sq),
		})
	}
	return c.JSON(fiber.Map{
		"square": sq,
		"piece":  piece,
	})
}

func (gc *GameController) GetMoves(c *fiber.Ctx) error {
	sq, err := chess.ParseSquare(c.Params("square"))
	if err != nil {
		return sendError(c, err)
	}
	opts, err := gc.gameService.GetMoveOptions(c.Params("gameId"), sq)
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(opts)
}

func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	var body moveBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid move body",
		})
	}
	req, err := model.ParseMoveRequest(body.From, body.To, body.Promotion)
	if err != nil {
		return sendError(c, err)
	}

	state, err := gc.gameService.HandleMove(c.Params("gameId"), middleware.PlayerID(c), req)
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(state)
}

func (gc *GameController) GetStatus(c *fiber.Ctx) error {
	status, err := gc.gameService.GetStatus(c.Params("gameId"))
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(status)
}

func (gc *GameController) DeleteGame(c *fiber.Ctx) error {
	if err := gc.gameService.DeleteGame(c.Params("gameId"), middleware.PlayerID(c)); err != nil {
		return sendError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Game deleted",
	})
}
