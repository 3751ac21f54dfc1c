package service

import (
	"github.com/benbeisheim/chesstutor-backend/internal/chess"
	"github.com/benbeisheim/chesstutor-backend/internal/model"
)

// GameService is the API the controllers talk to. Every call resolves the
// game first and fails with ErrGameNotFound for unknown IDs.
type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

func (gs *GameService) CreateGame(ownerID string) model.GameState {
	return gs.gameManager.CreateGame(ownerID).State()
}

func (gs *GameService) GetGameState(gameID string) (model.GameState, error) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	return game.State(), nil
}

func (gs *GameService) GetStatus(gameID string) (model.GameStatus, error) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return model.GameStatus{}, err
	}
	return game.Status(), nil
}

// GetPiece reports the piece on sq; ok is false for an empty square.
func (gs *GameService) GetPiece(gameID string, sq chess.Square) (chess.Piece, bool, error) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return chess.Piece{}, false, err
	}
	p, ok := game.PieceAt(sq)
	return p, ok, nil
}

func (gs *GameService) GetMoveOptions(gameID string, sq chess.Square) (model.MoveOptions, error) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return model.MoveOptions{}, err
	}
	return game.MoveOptions(sq), nil
}

func (gs *GameService) HandleMove(gameID, playerID string, req model.MoveRequest) (model.GameState, error) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	return game.MakeMove(playerID, req)
}

func (gs *GameService) DeleteGame(gameID, playerID string) error {
	return gs.gameManager.DeleteGame(gameID, playerID)
}

func (gs *GameService) GameCount() int {
	return gs.gameManager.Count()
}

func (gs *GameService) RegisterConnection(gameID, playerID string, conn model.Conn) error {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return err
	}
	game.RegisterConnection(playerID, conn)
	return nil
}

func (gs *GameService) UnregisterConnection(gameID, playerID string, conn model.Conn) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return
	}
	game.UnregisterConnection(playerID, conn)
}
