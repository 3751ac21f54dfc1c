package model

import (
	"errors"
	"fmt"
	"sync"

	"github.com/benbeisheim/chesstutor-backend/internal/chess"
	"github.com/benbeisheim/chesstutor-backend/internal/ws"
	"github.com/gofiber/fiber/v2/log"
)

var (
	ErrNotYourTurn   = errors.New("not your turn")
	ErrGameOver      = errors.New("game is over")
	ErrNotAuthorized = errors.New("player not authorized for this game")
)

// Game is one tutoring session: a board, whose turn it is, what has been
// played so far and the sockets watching it. The owner plays both sides.
type Game struct {
	ID      string
	OwnerID string

	mu       sync.Mutex
	board    *chess.Board
	toMove   chess.Color
	history  []Move
	captured CapturedPieces
	isCheck  bool
	status   chess.Status
	lastMove *SimpleMove

	connections *PlayerConnections
}

type GameState struct {
	ID             string         `json:"gameId"`
	Board          BoardState     `json:"board"`
	ToMove         chess.Color    `json:"toMove"`
	IsCheck        bool           `json:"isCheck"`
	Status         chess.Status   `json:"status"`
	MoveHistory    []Move         `json:"moveHistory"`
	CapturedPieces CapturedPieces `json:"capturedPieces"`
	LastMove       *SimpleMove    `json:"lastMove"`
}

type GameStatus struct {
	ToMove  chess.Color  `json:"toMove"`
	IsCheck bool         `json:"isCheck"`
	Status  chess.Status `json:"status"`
}

// MoveOptions lists where the piece on Square may go, with the special
// moves called out so a client can highlight them.
type MoveOptions struct {
	Square     chess.Square   `json:"square"`
	Moves      []chess.Square `json:"moves"`
	Promotions []chess.Square `json:"promotions"`
	EnPassant  []chess.Square `json:"enPassant"`
	Castling   []chess.Square `json:"castling"`
}

func NewGame(id, ownerID string) *Game {
	return &Game{
		ID:          id,
		OwnerID:     ownerID,
		board:       chess.NewBoard(),
		toMove:      chess.White,
		history:     make([]Move, 0),
		captured:    newCapturedPieces(),
		status:      chess.StatusActive,
		connections: NewPlayerConnections(),
	}
}

func (g *Game) IsOwner(playerID string) bool {
	return playerID != "" && playerID == g.OwnerID
}

func (g *Game) State() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state()
}

func (g *Game) state() GameState {
	history := make([]Move, len(g.history))
	copy(history, g.history)

	var lastMove *SimpleMove
	if g.lastMove != nil {
		lm := *g.lastMove
		lastMove = &lm
	}

	return GameState{
		ID:             g.ID,
		Board:          renderBoard(g.board),
		ToMove:         g.toMove,
		IsCheck:        g.isCheck,
		Status:         g.status,
		MoveHistory:    history,
		CapturedPieces: g.captured.clone(),
		LastMove:       lastMove,
	}
}

func (g *Game) Status() GameStatus {
	g.mu.Lock()
	defer g.mu.Unlock()
	return GameStatus{ToMove: g.toMove, IsCheck: g.isCheck, Status: g.status}
}

func (g *Game) PieceAt(sq chess.Square) (chess.Piece, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.PieceAt(sq)
}

// LegalMoves returns the destinations of the piece on sq. It is empty
// when the piece does not belong to the side to move or the game is over.
func (g *Game) LegalMoves(sq chess.Square) []chess.Square {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.legalMoves(sq)
}

func (g *Game) legalMoves(sq chess.Square) []chess.Square {
	p, ok := g.board.PieceAt(sq)
	if !ok || p.Color != g.toMove || g.status.Terminal() {
		return []chess.Square{}
	}
	return g.board.LegalMoves(sq)
}

func (g *Game) MoveOptions(sq chess.Square) MoveOptions {
	g.mu.Lock()
	defer g.mu.Unlock()

	opts := MoveOptions{
		Square:     sq,
		Moves:      g.legalMoves(sq),
		Promotions: []chess.Square{},
		EnPassant:  []chess.Square{},
		Castling:   []chess.Square{},
	}
	for _, to := range opts.Moves {
		switch {
		case g.board.IsPromotionMove(sq, to):
			opts.Promotions = append(opts.Promotions, to)
		case g.board.IsEnPassantMove(sq, to):
			opts.EnPassant = append(opts.EnPassant, to)
		case g.board.IsCastlingMove(sq, to):
			opts.Castling = append(opts.Castling, to)
		}
	}
	return opts
}

// MakeMove plays req for playerID and pushes the new state to every
// connected socket. The broadcast happens under the game lock so sockets
// see states in move order.
func (g *Game) MakeMove(playerID string, req MoveRequest) (GameState, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	state, err := g.makeMove(playerID, req)
	if err != nil {
		return GameState{}, err
	}
	g.broadcast(state)
	return state, nil
}

func (g *Game) makeMove(playerID string, req MoveRequest) (GameState, error) {
	if !g.IsOwner(playerID) {
		return GameState{}, ErrNotAuthorized
	}
	if g.status.Terminal() {
		return GameState{}, fmt.Errorf("%w: %s", ErrGameOver, g.status)
	}
	if !req.From.Valid() || !req.To.Valid() {
		return GameState{}, chess.ErrInvalidSquare
	}
	p, ok := g.board.PieceAt(req.From)
	if !ok {
		return GameState{}, fmt.Errorf("%w: %s", chess.ErrNoPiece, req.From)
	}
	if p.Color != g.toMove {
		return GameState{}, fmt.Errorf("%w: %s to move", ErrNotYourTurn, g.toMove)
	}

	ply, err := g.board.ApplyMove(req.From, req.To, req.Promotion)
	if err != nil {
		return GameState{}, err
	}
	g.record(ply)
	log.Debugf("game %s: %s played %s", g.ID, p.Color, g.history[len(g.history)-1].last().Notation)
	return g.state(), nil
}

// record books an applied ply and hands the turn over.
func (g *Game) record(ply chess.Ply) {
	if ply.Captured != nil {
		g.captured.add(*ply.Captured)
	}

	mover := g.toMove
	g.toMove = mover.Opponent()
	g.isCheck = g.board.IsKingInCheck(g.toMove)
	g.status = g.board.Status(g.toMove)

	recorded := &Ply{Ply: ply, Notation: notation(ply, g.isCheck, g.status)}
	if mover == chess.White || len(g.history) == 0 {
		g.history = append(g.history, Move{WhitePly: recorded})
	} else {
		g.history[len(g.history)-1].BlackPly = recorded
	}
	g.lastMove = &SimpleMove{From: ply.From, To: ply.To}
}

// last returns the most recent ply of the pair.
func (m Move) last() *Ply {
	if m.BlackPly != nil {
		return m.BlackPly
	}
	return m.WhitePly
}

// RegisterConnection attaches a socket to the game and sends it the
// current state.
func (g *Game) RegisterConnection(playerID string, conn Conn) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.connections.Register(playerID, conn)
	g.broadcast(g.state())
}

func (g *Game) UnregisterConnection(playerID string, conn Conn) {
	g.connections.Unregister(playerID, conn)
}

// Close drops every socket attached to the game.
func (g *Game) Close() {
	g.connections.CloseAll()
}

func (g *Game) broadcast(state GameState) {
	msg, err := ws.NewMessage(ws.MessageTypeGameState, state)
	if err != nil {
		log.Errorf("game %s: encoding state: %v", g.ID, err)
		return
	}
	g.connections.Broadcast(msg)
}
