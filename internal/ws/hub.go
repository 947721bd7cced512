package ws

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gorilla/websocket"

	"github.com/examplan/examplan_backend/internal/exams"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	sendBufferSize = 256
)

// StatusPayload is pushed to connected clients whenever an exam request
// changes status.
type StatusPayload struct {
	ExamRequestID uint      `json:"examRequestId"`
	Status        string    `json:"status"`
	CourseID      uint      `json:"courseId"`
	GroupID       uint      `json:"groupId"`
	ChangedAt     time.Time `json:"changedAt"`
}

type statusMessage struct {
	groupID uint
	payload []byte
}

// Hub fans exam request status changes out to websocket clients.
// Students only receive events for their own group; staff clients
// receive everything.
type Hub struct {
	register   chan *client
	unregister chan *client
	broadcast  chan statusMessage
	clients    map[*client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan statusMessage, 256),
		clients:    make(map[*client]struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = struct{}{}
			log.Printf("ws: client %s connected (group %d)", c.id, c.groupID)
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
				c.conn.Close()
				log.Printf("ws: client %s disconnected", c.id)
			}
		case msg := <-h.broadcast:
			for c := range h.clients {
				if !c.allowAll && c.groupID != msg.groupID {
					continue
				}
				select {
				case c.send <- msg.payload:
				default:
					delete(h.clients, c)
					close(c.send)
					c.conn.Close()
					log.Printf("ws: client %s dropped, send buffer full", c.id)
				}
			}
		}
	}
}

var _ exams.Notifier = (*Hub)(nil)

// NotifyStatusChange implements exams.Notifier. It is called after the
// lifecycle transaction commits.
func (h *Hub) NotifyStatusChange(examRequestID uint, status exams.Status, courseID, groupID uint) {
	if h == nil {
		return
	}
	payload := StatusPayload{
		ExamRequestID: examRequestID,
		Status:        string(status),
		CourseID:      courseID,
		GroupID:       groupID,
		ChangedAt:     time.Now().UTC(),
	}
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("ws: failed to marshal payload: %v", err)
		return
	}
	h.broadcast <- statusMessage{groupID: groupID, payload: data}
}

type client struct {
	id       string
	hub      *Hub
	conn     *websocket.Conn
	send     chan []byte
	groupID  uint
	allowAll bool
}

func newClient(id string, hub *Hub, conn *websocket.Conn, groupID uint, allowAll bool) *client {
	return &client{
		id:       id,
		hub:      hub,
		conn:     conn,
		send:     make(chan []byte, sendBufferSize),
		groupID:  groupID,
		allowAll: allowAll,
	}
}

func (c *client) readPump() {
	defer func() {
		c.hub.unregister <- c
	}()
	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			if _, err := w.Write(msg); err != nil {
				return
			}
			if err := w.Close(); err != nil {
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
