package controller

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/benbeisheim/chesstutor-backend/internal/middleware"
	"github.com/benbeisheim/chesstutor-backend/internal/model"
	"github.com/benbeisheim/chesstutor-backend/internal/service"
	"github.com/benbeisheim/chesstutor-backend/internal/ws"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/websocket/v2"
)

type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
	}
}

// socket serialises writes: game broadcasts and error replies come from
// different goroutines.
type socket struct {
	*websocket.Conn
	mu sync.Mutex
}

func (s *socket) WriteJSON(v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Conn.WriteJSON(v)
}

// HandleConnection serves one client socket until it closes.
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID := c.Params("gameId")
	playerID, _ := c.Locals(middleware.PlayerIDKey).(string)
	conn := &socket{Conn: c}

	if err := wsc.gameService.RegisterConnection(gameID, playerID, conn); err != nil {
		log.Warnf("rejecting socket for game %s: %v", gameID, err)
		conn.WriteJSON(ws.ErrorMessage(err.Error()))
		c.Close()
		return
	}
	log.Debugf("player %s connected to game %s", playerID, gameID)
	defer wsc.gameService.UnregisterConnection(gameID, playerID, conn)

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Warnf("read error on game %s: %v", gameID, err)
			}
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			conn.WriteJSON(ws.ErrorMessage("malformed message"))
			continue
		}
		if err := wsc.handleMessage(gameID, playerID, msg); err != nil {
			log.Debugf("game %s: %v", gameID, err)
			conn.WriteJSON(ws.ErrorMessage(err.Error()))
		}
	}
}

// handleMessage dispatches one inbound frame. A successful move reaches the
// client through the game's broadcast.
func (wsc *WebSocketController) handleMessage(gameID, playerID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeMove:
		var body moveBody
		if err := json.Unmarshal(msg.Payload, &body); err != nil {
			return fmt.Errorf("invalid move payload: %w", err)
		}
		req, err := model.ParseMoveRequest(body.From, body.To, body.Promotion)
		if err != nil {
			return err
		}
		_, err = wsc.gameService.HandleMove(gameID, playerID, req)
		return err
	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}
