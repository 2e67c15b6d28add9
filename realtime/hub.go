package realtime

import (
	"zenith-project/backend/logging"
	"zenith-project/backend/metrics"
)

// Hub vodi evidenciju povezanih WebSocket klijenata. Snapshoti se šalju
// ciljano po pretplati, pa hub ne emituje broadcast; zadužen je za
// životni ciklus klijenata.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// Run pokreće glavnu petlju hub-a.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			metrics.ConnectedClients.Inc()
			logging.Logger.Infof("Event ID: WS_CLIENT_CONNECTED, Description: Client connected: %s", client.userID)
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				metrics.ConnectedClients.Dec()
				logging.Logger.Infof("Event ID: WS_CLIENT_DISCONNECTED, Description: Client disconnected: %s", client.userID)
			}
		}
	}
}
