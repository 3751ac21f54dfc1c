package main

import (
	"os"

	"github.com/benbeisheim/chesstutor-backend/internal/config"
	"github.com/benbeisheim/chesstutor-backend/internal/controller"
	"github.com/benbeisheim/chesstutor-backend/internal/middleware"
	"github.com/benbeisheim/chesstutor-backend/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Errorf("loading config: %v", err)
		os.Exit(1)
	}
	log.SetLevel(cfg.LogLevel)

	app := fiber.New(fiber.Config{
		AppName: "Chess Tutor API",
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins(),
		AllowHeaders:     "Origin, Content-Type, Accept, X-Player-ID",
		AllowMethods:     "GET, POST, DELETE, OPTIONS",
		AllowCredentials: true,
	}))

	// Initialize services
	gameManager := service.NewGameManager()
	gameService := service.NewGameService(gameManager)

	// Initialize controllers
	healthController := controller.NewHealthController(gameService, cfg.Env)
	gameController := controller.NewGameController(gameService)
	wsController := controller.NewWebSocketController(gameService)

	app.Get("/", healthController.Root)
	app.Get("/api/v1/health", healthController.Health)

	// WebSocket routes
	app.Get("/ws/game/:gameId", middleware.EnsurePlayerID(), middleware.WebSocketUpgrade(), websocket.New(wsController.HandleConnection, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		Origins:         cfg.CORSOrigins,
	}))

	// REST routes
	gameController.RegisterRoutes(app.Group("/api/game", middleware.EnsurePlayerID()))

	log.Infof("starting %s server on %s", cfg.Env, cfg.Addr())
	if err := app.Listen(cfg.Addr()); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
