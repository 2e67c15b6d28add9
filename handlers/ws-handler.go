package handlers

import (
	"net/http"

	"github.com/gorilla/websocket"

	"zenith-project/backend/logging"
	"zenith-project/backend/realtime"
	"zenith-project/backend/utils"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WSHandler struct {
	Hub      *realtime.Hub
	Channels *realtime.Channels
}

func NewWSHandler(hub *realtime.Hub, channels *realtime.Channels) *WSHandler {
	return &WSHandler{Hub: hub, Channels: channels}
}

// ServeWS podiže konekciju na WebSocket. Token stiže kao query parametar
// jer browser ne može da postavi Authorization zaglavlje pri upgrade-u.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		http.Error(w, "Authorization token required", http.StatusUnauthorized)
		return
	}

	claims, err := utils.ValidateToken(token)
	if err != nil {
		http.Error(w, "Invalid token", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Logger.Errorf("Event ID: WS_UPGRADE_FAILED, Description: %v", err)
		return
	}

	client := realtime.NewClient(h.Hub, conn, h.Channels, claims.UserID)
	h.Hub.Register(client)

	go client.WritePump()
	go client.ReadPump()

	logging.Logger.Infof("Event ID: WS_CONNECTED, Description: User %s opened a realtime connection.", claims.UserID)
}
