package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second
	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second
	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10
	// Maximum message size allowed from peer.
	maxMessageSize = 512
	// Frames buffered per spectator before it is considered too slow.
	sendBuffer = 32
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// hub keeps the set of connected spectators and fans frames out to them.
type hub struct {
	sync.Mutex
	clients map[*client]struct{}
	limiter *rate.Limiter
}

func newHub(limit rate.Limit, burst int) *hub {
	return &hub{
		clients: map[*client]struct{}{},
		limiter: rate.NewLimiter(limit, burst),
	}
}

func (h *hub) add(c *client) {
	h.Lock()
	defer h.Unlock()
	h.clients[c] = struct{}{}
	log.WithField("spectators", len(h.clients)).Info("spectator connected")
}

func (h *hub) remove(c *client) {
	h.Lock()
	defer h.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
		log.WithField("spectators", len(h.clients)).Info("spectator disconnected")
	}
}

func (h *hub) count() int {
	h.Lock()
	defer h.Unlock()
	return len(h.clients)
}

// broadcast queues msg for every spectator. Frames over the rate limit are
// dropped unless force is set. Spectators that cannot keep up are cut off.
func (h *hub) broadcast(msg []byte, force bool) {
	if !h.limiter.Allow() && !force {
		return
	}

	h.Lock()
	defer h.Unlock()
	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			delete(h.clients, c)
			close(c.send)
			log.Warn("dropping slow spectator")
		}
	}
}

func (h *hub) closeAll() {
	h.Lock()
	defer h.Unlock()
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

func newClient(conn *websocket.Conn) *client {
	return &client{
		conn: conn,
		send: make(chan []byte, sendBuffer),
	}
}

// enqueue queues msg without blocking. Only safe before the client is added
// to the hub, after that the hub owns the send channel.
func (c *client) enqueue(msg []byte) {
	select {
	case c.send <- msg:
	default:
	}
}

// readPump discards anything the spectator sends and unregisters the client
// when the connection goes away.
func (c *client) readPump(h *hub) {
	defer func() {
		h.remove(c)
		if err := c.conn.Close(); err != nil {
			log.WithError(err).Debug("closing spectator connection")
		}
	}()
	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.WithError(err).Warn("spectator read failed")
			}
			return
		}
	}
}

// writePump sends queued frames and keeps the connection alive with pings.
func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
