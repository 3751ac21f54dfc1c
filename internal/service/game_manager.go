package service

import (
	"errors"
	"fmt"
	"sync"

	"github.com/benbeisheim/chesstutor-backend/internal/model"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

var ErrGameNotFound = errors.New("game not found")

// GameManager owns every live game, keyed by ID.
type GameManager struct {
	games map[string]*model.Game
	mu    sync.RWMutex
}

func NewGameManager() *GameManager {
	return &GameManager{
		games: make(map[string]*model.Game),
	}
}

// CreateGame starts a new game owned by ownerID under a fresh ID.
func (gm *GameManager) CreateGame(ownerID string) *model.Game {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	var id string
	for {
		id = uuid.New().String()
		if _, taken := gm.games[id]; !taken {
			break
		}
	}
	game := model.NewGame(id, ownerID)
	gm.games[id] = game
	log.Infof("created game %s for player %s", id, ownerID)
	return game
}

func (gm *GameManager) GetGame(gameID string) (*model.Game, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	game, exists := gm.games[gameID]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	return game, nil
}

// DeleteGame removes a game and closes its sockets. Only the owner may
// delete it.
func (gm *GameManager) DeleteGame(gameID, playerID string) error {
	gm.mu.Lock()
	game, exists := gm.games[gameID]
	if !exists {
		gm.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	if !game.IsOwner(playerID) {
		gm.mu.Unlock()
		return model.ErrNotAuthorized
	}
	delete(gm.games, gameID)
	gm.mu.Unlock()

	game.Close()
	log.Infof("deleted game %s", gameID)
	return nil
}

func (gm *GameManager) Count() int {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	return len(gm.games)
}
