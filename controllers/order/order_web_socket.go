package orderControllers

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/junaidrashid-git/storefront-api/models"
)

const (
	writeWait = 10 * time.Second
	// sendBuffer is how many orders a socket may fall behind before it is
	// dropped.
	sendBuffer = 16
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// feedClient is one admin socket. Only its writer goroutine writes to conn.
type feedClient struct {
	conn *websocket.Conn
	send chan []byte
}

// Feed pushes every newly placed order to connected admin sockets.
// Broadcasting never waits on a socket.
type Feed struct {
	mu      sync.Mutex
	clients map[*feedClient]bool
}

func NewFeed() *Feed {
	return &Feed{clients: make(map[*feedClient]bool)}
}

// OrderWebSocketHandler upgrades the request and keeps the socket
// registered until the peer goes away.
func (f *Feed) OrderWebSocketHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	client := &feedClient{conn: conn, send: make(chan []byte, sendBuffer)}
	f.add(client)
	defer f.remove(client)

	go client.writeLoop()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// OrderPlaced queues order for every connected socket. A socket whose
// queue is full is disconnected.
func (f *Feed) OrderPlaced(order models.Order) {
	data, err := json.Marshal(order)
	if err != nil {
		log.Printf("❌ Failed to encode order %s: %v", order.ID, err)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for client := range f.clients {
		select {
		case client.send <- data:
		default:
			log.Println("⚠️ Dropping slow order feed client")
			f.drop(client)
		}
	}
}

// Len reports how many sockets are connected.
func (f *Feed) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.clients)
}

// Close disconnects every socket.
func (f *Feed) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for client := range f.clients {
		f.drop(client)
	}
}

func (f *Feed) add(client *feedClient) {
	f.mu.Lock()
	f.clients[client] = true
	f.mu.Unlock()
}

func (f *Feed) remove(client *feedClient) {
	f.mu.Lock()
	f.drop(client)
	f.mu.Unlock()
}

// drop unregisters client and closes its queue. f.mu must be held.
func (f *Feed) drop(client *feedClient) {
	if !f.clients[client] {
		return
	}
	delete(f.clients, client)
	close(client.send)
}

// writeLoop drains the queue until it is closed or a write fails, then
// closes the socket, which also ends the handler's read loop.
func (c *feedClient) writeLoop() {
	defer c.conn.Close()
	for data := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
	}
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
