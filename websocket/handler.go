package websocket

import (
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/thesrcielos/RockPaperScissors/internal/events"
	"github.com/thesrcielos/RockPaperScissors/internal/stats"
)

var (
	upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     func(r *http.Request) bool { return true },
	}
)

// LeaderboardCache supplies the snapshot sent to a spectator on connect.
// Wired in main.
var LeaderboardCache stats.LeaderboardCache

// FeedHandler upgrades the connection and streams game events to the client
// until it disconnects.
func FeedHandler(c echo.Context) error {
	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		log.Println("WebSocket upgrade failed:", err)
		return err
	}

	id := uuid.New().String()[:8]
	spectator := events.RegisterSpectator(id, ws)
	log.Printf("Spectator connected: %s", id)

	sendLeaderboardSnapshot(spectator)
	go listenSpectator(id, ws)

	return nil
}

func sendLeaderboardSnapshot(spectator *events.Spectator) {
	if LeaderboardCache == nil {
		return
	}

	top, err := LeaderboardCache.Top(10)
	if err != nil {
		log.Println("Error reading leaderboard snapshot:", err)
		return
	}

	event := events.GameEvent{
		Type:    "LEADERBOARD",
		Payload: top,
	}
	if err := spectator.Send(event); err != nil {
		log.Println("Error sending snapshot to", spectator.ID, ":", err)
	}
}

func listenSpectator(id string, conn *websocket.Conn) {
	defer func() {
		log.Printf("Spectator disconnected: %s", id)
		events.UnregisterSpectator(id)
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
