package realtime

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"zenith-project/backend/logging"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 64 * 1024
)

// SubscribeRequest je poruka kojom klijent otvara ili zatvara kanal.
type SubscribeRequest struct {
	Action  string `json:"action"` // "subscribe" ili "unsubscribe"
	Channel string `json:"channel"`
	Scope   string `json:"scope"`
}

// SnapshotMessage je poruka koju server gura klijentu na svaku promenu.
type SnapshotMessage struct {
	Type    string      `json:"type"`
	Channel string      `json:"channel"`
	Scope   string      `json:"scope"`
	Data    interface{} `json:"data"`
}

type errorMessage struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

// Client predstavlja jednu WebSocket konekciju i njene otvorene kanale.
type Client struct {
	hub      *Hub
	conn     *websocket.Conn
	channels *Channels
	send     chan []byte
	userID   string

	mu   sync.Mutex
	subs map[string]CancelFunc
}

func NewClient(hub *Hub, conn *websocket.Conn, channels *Channels, userID string) *Client {
	return &Client{
		hub:      hub,
		conn:     conn,
		channels: channels,
		send:     make(chan []byte, 32),
		userID:   userID,
		subs:     make(map[string]CancelFunc),
	}
}

// ReadPump čita poruke klijenta i upravlja pretplatama.
func (c *Client) ReadPump() {
	defer func() {
		c.cancelAll()
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logging.Logger.Warnf("Event ID: WS_READ_ERROR, Description: WebSocket error for %s: %v", c.userID, err)
			}
			break
		}

		var req SubscribeRequest
		if err := json.Unmarshal(message, &req); err != nil {
			logging.Logger.Warnf("Event ID: WS_BAD_MESSAGE, Description: Unparseable message from %s: %v", c.userID, err)
			continue
		}

		switch req.Action {
		case "subscribe":
			c.subscribe(req.Channel, req.Scope)
		case "unsubscribe":
			c.unsubscribe(req.Channel, req.Scope)
		default:
			c.sendError("unknown action: " + req.Action)
		}
	}
}

func (c *Client) subscribe(channel, scope string) {
	if scope == "" {
		c.sendError("scope is required")
		return
	}
	key := channel + "|" + scope

	c.mu.Lock()
	if _, exists := c.subs[key]; exists {
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	cancel, err := c.channels.Open(channel, scope, func(data interface{}) {
		c.push(channel, scope, data)
	})
	if err != nil {
		c.sendError(err.Error())
		return
	}

	c.mu.Lock()
	c.subs[key] = cancel
	c.mu.Unlock()
}

func (c *Client) unsubscribe(channel, scope string) {
	key := channel + "|" + scope

	c.mu.Lock()
	cancel, ok := c.subs[key]
	delete(c.subs, key)
	c.mu.Unlock()

	if ok {
		cancel()
	}
}

func (c *Client) cancelAll() {
	c.mu.Lock()
	cancels := make([]CancelFunc, 0, len(c.subs))
	for _, cancel := range c.subs {
		cancels = append(cancels, cancel)
	}
	c.subs = make(map[string]CancelFunc)
	c.mu.Unlock()

	for _, cancel := range cancels {
		cancel()
	}
}

func (c *Client) push(channel, scope string, data interface{}) {
	b, err := json.Marshal(SnapshotMessage{Type: "snapshot", Channel: channel, Scope: scope, Data: data})
	if err != nil {
		logging.Logger.Errorf("Event ID: WS_MARSHAL_ERROR, Description: Failed to marshal snapshot for %s: %v", c.userID, err)
		return
	}

	select {
	case c.send <- b:
	default:
		// Pun bafer znači spor ili mrtav klijent; poruka se ispušta,
		// sledeći snapshot donosi celo stanje.
		logging.Logger.Warnf("Event ID: WS_SEND_BUFFER_FULL, Description: Dropping snapshot for slow client %s", c.userID)
	}
}

func (c *Client) sendError(msg string) {
	b, err := json.Marshal(errorMessage{Type: "error", Error: msg})
	if err != nil {
		return
	}
	select {
	case c.send <- b:
	default:
	}
}

// WritePump šalje poruke iz send kanala na konekciju.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Hub je zatvorio kanal.
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
