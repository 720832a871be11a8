package ws

import (
	"encoding/json"
	"time"

	"tulook/internal/queue"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 54 * time.Second
)

// Message is the frame pushed to live views.
type Message struct {
	EventType string      `json:"event_type"`
	View      string      `json:"view"`
	Data      interface{} `json:"data"`
}

// Renderer turns a snapshot into the view payload.
type Renderer func(queue.Snapshot) interface{}

// Client is one WebSocket connection following one subscription.
type Client struct {
	conn   *websocket.Conn
	sub    *queue.Subscription
	view   string
	render Renderer
	log    *zap.Logger
}

// Serve pumps snapshots to the connection until either side goes away. The
// subscription is released on every exit path.
func (c *Client) Serve() {
	done := make(chan struct{})
	go func() {
		c.readPump()
		close(done)
	}()
	c.writePump(done)
}

// readPump only watches for disconnects; clients send nothing.
func (c *Client) readPump() {
	defer c.sub.Close()
	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log.Debug("websocket read", zap.String("view", c.view), zap.Error(err))
			}
			return
		}
	}
}

func (c *Client) writePump(readerDone <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.sub.Close()
		c.conn.Close()
		<-readerDone
	}()

	for {
		select {
		case snap, ok := <-c.sub.C():
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			payload, err := json.Marshal(Message{
				EventType: "snapshot",
				View:      c.view,
				Data:      c.render(snap),
			})
			if err != nil {
				c.log.Error("encode websocket message", zap.Error(err))
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
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
