package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/diamondsched/tournament-server/live"
)

var errMissingTournamentID = errors.New("tournamentId query parameter is required")

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Browser clients connect from the SPA origin; tighten this once the
		// frontend domains are fixed.
		return true
	},
}

// ServeWs upgrades the connection and subscribes the client to the live feed
// for one tournament. The tournament ID comes from the query string so plain
// browser WebSocket clients can connect without custom headers.
func ServeWs(hub *live.Hub, w http.ResponseWriter, r *http.Request) {
	tournamentID := r.URL.Query().Get("tournamentId")
	if tournamentID == "" {
		badRequestResponse(w, r, errMissingTournamentID)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	client := &live.Client{
		Hub:  hub,
		Conn: conn,
		Send: make(chan []byte, 256),
		Room: tournamentID,
	}
	hub.Register <- client

	go client.WritePump()
	go client.ReadPump()
}
