// Package network streams session frames to WebSocket viewers and relays
// their control messages back to the session.
package network

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/automoto/homebound/session"
	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// sendBuffer is the number of frames queued per viewer before frames are
// dropped for that viewer.
const sendBuffer = 16

// ControlMessage is the JSON a viewer sends to drive the player.
type ControlMessage struct {
	Type   string `json:"t"` // "press", "release" or "tap"
	Button string `json:"b,omitempty"`
}

// Controller receives viewer input. *session.Session implements it.
type Controller interface {
	Press(session.Button)
	Release(session.Button)
	Tap()
}

type viewer struct {
	id   uuid.UUID
	conn *websocket.Conn
	send chan []byte
}

// writePump forwards queued frames until ctx is done or send is closed.
func (v *viewer) writePump(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-v.send:
			if !ok {
				return
			}
			if err := v.conn.Write(ctx, websocket.MessageText, msg); err != nil {
				return
			}
		}
	}
}

// Feed is a session.Sink that broadcasts every frame as JSON to all
// connected viewers. It is also the http.Handler viewers connect to.
type Feed struct {
	control Controller

	mu      sync.RWMutex
	viewers map[uuid.UUID]*viewer
}

// NewFeed creates a feed. control may be nil for a read-only feed.
func NewFeed(control Controller) *Feed {
	return &Feed{
		control: control,
		viewers: make(map[uuid.UUID]*viewer),
	}
}

// Publish queues frame for every viewer. Viewers that fall behind miss
// frames instead of stalling the tick loop.
func (f *Feed) Publish(frame session.Frame) {
	data, err := json.Marshal(frame)
	if err != nil {
		log.Printf("[feed] marshal frame %d: %v", frame.Tick, err)
		return
	}

	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, v := range f.viewers {
		select {
		case v.send <- data:
		default:
		}
	}
}

// Viewers is the number of connected viewers.
func (f *Feed) Viewers() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.viewers)
}

func (f *Feed) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		log.Printf("[feed] accept: %v", err)
		return
	}
	defer conn.CloseNow()

	v := &viewer{id: uuid.New(), conn: conn, send: make(chan []byte, sendBuffer)}
	f.register(v)
	defer f.unregister(v.id)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	go v.writePump(ctx)

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			status := websocket.CloseStatus(err)
			if status != websocket.StatusNormalClosure && status != websocket.StatusGoingAway {
				log.Printf("[feed] viewer %s read: %v", v.id, err)
			}
			return
		}
		f.handle(v.id, data)
	}
}

func (f *Feed) handle(id uuid.UUID, data []byte) {
	var msg ControlMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		log.Printf("[feed] viewer %s: bad message: %v", id, err)
		return
	}
	if f.control == nil {
		return
	}

	if msg.Type == "tap" {
		f.control.Tap()
		return
	}
	b, err := session.ParseButton(msg.Button)
	if err != nil {
		log.Printf("[feed] viewer %s: %v", id, err)
		return
	}
	switch msg.Type {
	case "press":
		f.control.Press(b)
	case "release":
		f.control.Release(b)
	default:
		log.Printf("[feed] viewer %s: unknown message type %q", id, msg.Type)
	}
}

func (f *Feed) register(v *viewer) {
	f.mu.Lock()
	f.viewers[v.id] = v
	n := len(f.viewers)
	f.mu.Unlock()
	log.Printf("[feed] viewer %s connected (%d total)", v.id, n)
}

func (f *Feed) unregister(id uuid.UUID) {
	f.mu.Lock()
	v, ok := f.viewers[id]
	if ok {
		close(v.send)
		delete(f.viewers, id)
	}
	n := len(f.viewers)
	f.mu.Unlock()
	if ok {
		log.Printf("[feed] viewer %s disconnected (%d total)", id, n)
	}
}
