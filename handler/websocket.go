package handler

import (
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
)

var (
	seasonConnections = make(map[string]map[*websocket.Conn]bool)
	seasonMutex       sync.Mutex
)

type seasonEvent struct {
	Event  string `json:"event"`
	ShowId uint   `json:"showId"`
	Season string `json:"season"`
}

// SeasonFeed keeps a dashboard client subscribed to one season's change feed.
// The server only pushes; inbound messages are drained to detect disconnect.
func SeasonFeed(c *websocket.Conn) {
	season := decodeSeason(c.Params("season"))
	if season == "" {
		c.Close()
		return
	}

	seasonMutex.Lock()
	if seasonConnections[season] == nil {
		seasonConnections[season] = make(map[*websocket.Conn]bool)
	}
	seasonConnections[season][c] = true
	seasonMutex.Unlock()

	defer func() {
		seasonMutex.Lock()
		delete(seasonConnections[season], c)
		if len(seasonConnections[season]) == 0 {
			delete(seasonConnections, season)
		}
		seasonMutex.Unlock()
		c.Close()
	}()

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}

// BroadcastSeasonEvent tells every dashboard watching the season to refetch.
func BroadcastSeasonEvent(season, event string, showId uint) {
	seasonMutex.Lock()
	conns := make([]*websocket.Conn, 0, len(seasonConnections[season]))
	for conn := range seasonConnections[season] {
		conns = append(conns, conn)
	}
	seasonMutex.Unlock()

	payload := seasonEvent{Event: event, ShowId: showId, Season: season}
	for _, conn := range conns {
		if err := conn.WriteJSON(payload); err != nil {
			log.Printf("season feed write failed: %v", err)
		}
	}
}
