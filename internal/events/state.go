package events

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Spectator is one live-feed websocket client.
type Spectator struct {
	ID     string
	Conn   *websocket.Conn
	ConnMu sync.Mutex
}

var (
	spectators   = make(map[string]*Spectator)
	spectatorsMu sync.RWMutex
)

func RegisterSpectator(id string, conn *websocket.Conn) *Spectator {
	spectatorsMu.Lock()
	defer spectatorsMu.Unlock()

	s := &Spectator{
		ID:   id,
		Conn: conn,
	}
	spectators[id] = s
	return s
}

func UnregisterSpectator(id string) {
	spectatorsMu.Lock()
	defer spectatorsMu.Unlock()

	delete(spectators, id)
}

func GetAllSpectators() []*Spectator {
	spectatorsMu.RLock()
	defer spectatorsMu.RUnlock()

	all := make([]*Spectator, 0, len(spectators))
	for _, s := range spectators {
		all = append(all, s)
	}
	return all
}

func (s *Spectator) Send(event GameEvent) error {
	s.ConnMu.Lock()
	defer s.ConnMu.Unlock()

	return s.Conn.WriteJSON(event)
}
