package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// PlayerIDKey is the Locals key holding the caller's player ID.
const PlayerIDKey = "playerID"

// EnsurePlayerID identifies the caller from the X-Player-ID header or the
// playerId query parameter and rejects anonymous requests.
func EnsurePlayerID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if id, ok := c.Locals(PlayerIDKey).(string); ok && id != "" {
			return c.Next()
		}

		playerID := c.Get("X-Player-ID")
		if playerID == "" {
			playerID = c.Query("playerId")
		}
		if playerID == "" {
			log.Debugf("rejecting %s %s: no player ID", c.Method(), c.Path())
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Player ID is required. Send the X-Player-ID header or the playerId query parameter.",
			})
		}

		c.Locals(PlayerIDKey, playerID)
		return c.Next()
	}
}

// PlayerID returns the ID stored by EnsurePlayerID.
func PlayerID(c *fiber.Ctx) string {
	id, _ := c.Locals(PlayerIDKey).(string)
	return id
}
