package model

import (
	"sync"

	"github.com/benbeisheim/chesstutor-backend/internal/ws"
	"github.com/gofiber/fiber/v2/log"
)

// Conn is the write side of a player's live connection.
// *websocket.Conn satisfies it.
type Conn interface {
	WriteJSON(v interface{}) error
	Close() error
}

// PlayerConnections holds one live connection per player watching a game.
type PlayerConnections struct {
	mu    sync.Mutex
	conns map[string]Conn // playerID -> connection
}

func NewPlayerConnections() *PlayerConnections {
	return &PlayerConnections{conns: make(map[string]Conn)}
}

// Register attaches conn for playerID. A player reconnecting from a new
// socket replaces the old one, which is closed.
func (pc *PlayerConnections) Register(playerID string, conn Conn) {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if old, ok := pc.conns[playerID]; ok && old != conn {
		log.Debugf("replacing connection for player %s", playerID)
		old.Close()
	}
	pc.conns[playerID] = conn
}

// Unregister detaches conn if it is still the player's current connection.
func (pc *PlayerConnections) Unregister(playerID string, conn Conn) {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if current, ok := pc.conns[playerID]; ok && current == conn {
		delete(pc.conns, playerID)
	}
}

func (pc *PlayerConnections) Len() int {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return len(pc.conns)
}

// Broadcast writes msg to every connection, dropping the ones that fail.
// Writes happen under the lock so a socket never has two writers.
func (pc *PlayerConnections) Broadcast(msg ws.Message) {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	for playerID, conn := range pc.conns {
		if err := conn.WriteJSON(msg); err != nil {
			log.Warnf("dropping connection for player %s: %v", playerID, err)
			conn.Close()
			delete(pc.conns, playerID)
		}
	}
}

// CloseAll closes and forgets every connection.
func (pc *PlayerConnections) CloseAll() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	for playerID, conn := range pc.conns {
		conn.Close()
		delete(pc.conns, playerID)
	}
}
