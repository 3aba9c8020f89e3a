// Package handlers client.go
package handlers

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/4cecoder/walker3d/game"
	"github.com/4cecoder/walker3d/models"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 25 * time.Second
	maxMessageSize = 1024
	sendBuffer     = 64
	backlogLimit   = 120
)

var ErrClientClosed = errors.New("client closed")

type keyEvent struct {
	Key  game.Key
	Down bool
}

// Client is one websocket connection. ReadPump and WritePump run on their
// own goroutines; everything else is called from the session goroutine.
type Client struct {
	ID    string
	Conn  *websocket.Conn
	Send  chan []byte
	Inbox chan keyEvent

	messageQueue *MessageQueue
	log          *zap.Logger
	mu           sync.Mutex    // orders Send against the backlog
	backlogged   chan struct{} // wakes WritePump when the backlog grows
	done         chan struct{}
	closeOnce    sync.Once
}

func NewClient(conn *websocket.Conn, id string, messageQueue *MessageQueue, log *zap.Logger) *Client {
	return &Client{
		ID:           id,
		Conn:         conn,
		Send:         make(chan []byte, sendBuffer),
		Inbox:        make(chan keyEvent, 32),
		messageQueue: messageQueue,
		log:          log,
		backlogged:   make(chan struct{}, 1),
		done:         make(chan struct{}),
	}
}

// Done is closed once the connection is gone.
func (c *Client) Done() <-chan struct{} {
	return c.done
}

func (c *Client) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
	})
}

func (c *Client) ReadPump() {
	defer c.Close()

	c.Conn.SetReadLimit(maxMessageSize)
	_ = c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		messageType, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log.Warn("websocket read failed", zap.Error(err))
			}
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		ev, err := parseKeyMessage(message)
		if err != nil {
			c.log.Debug("ignoring message", zap.Error(err))
			continue
		}
		select {
		case c.Inbox <- ev:
		case <-c.done:
			return
		}
	}
}

func parseKeyMessage(message []byte) (keyEvent, error) {
	var msg models.KeyMessage
	if err := json.Unmarshal(message, &msg); err != nil {
		return keyEvent{}, err
	}
	if msg.Type != models.TypeKey {
		return keyEvent{}, errors.New("unexpected message type " + msg.Type)
	}
	k, err := game.ParseKey(msg.Key)
	if err != nil {
		return keyEvent{}, err
	}
	return keyEvent{Key: k, Down: msg.Down}, nil
}

func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
		c.messageQueue.ClearQueue(c.ID)
	}()

	for {
		select {
		case message := <-c.Send:
			if err := c.write(websocket.TextMessage, message); err != nil {
				c.log.Warn("websocket write failed", zap.Error(err))
				c.Close()
				return
			}
			if err := c.flushBacklog(); err != nil {
				c.log.Warn("websocket write failed", zap.Error(err))
				c.Close()
				return
			}
		case <-c.backlogged:
			if err := c.flushBacklog(); err != nil {
				c.log.Warn("websocket write failed", zap.Error(err))
				c.Close()
				return
			}
		case <-ticker.C:
			if err := c.write(websocket.PingMessage, nil); err != nil {
				c.Close()
				return
			}
		case <-c.done:
			_ = c.write(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}

// flushBacklog writes queued messages once everything in Send has gone out.
// While the backlog is non-empty SendMessage appends to it, so it only holds
// messages newer than those in Send.
func (c *Client) flushBacklog() error {
	if len(c.Send) > 0 {
		return nil
	}
	for {
		message, err := c.messageQueue.Dequeue(c.ID)
		if err != nil {
			return nil
		}
		if err := c.write(websocket.TextMessage, message); err != nil {
			return err
		}
	}
}

func (c *Client) write(messageType int, data []byte) error {
	_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.Conn.WriteMessage(messageType, data)
}

// SendMessage queues message for the write pump. It never blocks: when the
// send buffer is full the message goes to the backlog, where it may be
// dropped if the client falls far behind.
func (c *Client) SendMessage(message []byte) error {
	return c.send(message, false)
}

// SendPinned is SendMessage for messages that must not be dropped.
func (c *Client) SendPinned(message []byte) error {
	return c.send(message, true)
}

func (c *Client) send(message []byte, pinned bool) error {
	select {
	case <-c.done:
		return ErrClientClosed
	default:
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.messageQueue.QueueSize(c.ID) == 0 {
		select {
		case c.Send <- message:
			return nil
		default:
		}
	}
	if dropped := c.messageQueue.Enqueue(c.ID, message, pinned); dropped > 0 {
		c.log.Debug("backlog full, dropped messages", zap.Int("dropped", dropped))
	}
	select {
	case c.backlogged <- struct{}{}:
	default:
	}
	return nil
}

func (c *Client) SendInstruction(instruction models.RenderInstruction, pinned bool) error {
	b, err := json.Marshal(instruction)
	if err != nil {
		return err
	}
	return c.send(b, pinned)
}

// Render implements game.Renderer by forwarding the frame to the page.
func (c *Client) Render(f game.Frame) error {
	return c.SendInstruction(models.RenderInstruction{
		Type:    models.TypeFrame,
		Payload: models.NewFrameState(f),
	}, false)
}
