package preview

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/vango-dev/hxattr/hx"
	"github.com/vango-dev/hxattr/internal/errors"
	"github.com/vango-dev/hxattr/pkg/middleware"
	"github.com/vango-dev/hxattr/pkg/vdom"
)

const (
	writeTimeout = 10 * time.Second
	sendBuffer   = 32
)

// client is one chat socket.
type client struct {
	conn *websocket.Conn
	send chan []byte
}

// hub fans chat fragments out to every connected client and replays recent
// ones to new clients. All client bookkeeping happens on the run goroutine.
type hub struct {
	logger  *slog.Logger
	history int

	register   chan *client
	unregister chan *client
	broadcast  chan []byte
	started    chan struct{}
	done       chan struct{}

	clients map[*client]struct{}
	recent  [][]byte
}

func newHub(history int, logger *slog.Logger) *hub {
	return &hub{
		logger:     logger.With("component", "preview.chat"),
		history:    history,
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan []byte),
		started:    make(chan struct{}),
		done:       make(chan struct{}),
		clients:    make(map[*client]struct{}),
	}
}

// run serves the hub until ctx is done, then closes every client. It must
// be called at most once.
func (h *hub) run(ctx context.Context) error {
	close(h.started)
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				h.drop(c)
			}
			return nil

		case c := <-h.register:
			h.clients[c] = struct{}{}
			middleware.RecordWebSocketOpen()
			for _, msg := range h.recent {
				c.send <- msg
			}

		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				h.drop(c)
			}

		case msg := <-h.broadcast:
			h.recent = append(h.recent, msg)
			if len(h.recent) > h.history {
				h.recent = h.recent[len(h.recent)-h.history:]
			}
			for c := range h.clients {
				select {
				case c.send <- msg:
					middleware.RecordWebSocketMessage("out")
				default:
					h.logger.Warn("dropping slow chat client")
					middleware.RecordWebSocketError("slow_client")
					h.drop(c)
				}
			}
		}
	}
}

func (h *hub) drop(c *client) {
	delete(h.clients, c)
	close(c.send)
	middleware.RecordWebSocketClose()
}

// join hands c to the hub. It returns false when the hub has not been
// started or has already stopped.
func (h *hub) join(c *client) bool {
	select {
	case <-h.started:
	default:
		return false
	}

	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

func (h *hub) leave(c *client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

func (h *hub) publish(msg []byte) {
	select {
	case h.broadcast <- msg:
	case <-h.done:
	}
}

// chatMessage is the JSON the htmx ws extension sends for a ws-send form.
type chatMessage struct {
	Message string `json:"message"`
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		s.logger.Warn("websocket upgrade failed", "error", errors.New(errors.ErrUpgrade).Wrap(err))
		middleware.RecordWebSocketError("upgrade")
		return
	}
	conn.SetReadLimit(s.config.WebSocket.MaxMessageSize)

	c := &client{conn: conn, send: make(chan []byte, sendBuffer+s.config.WebSocket.History)}
	if !s.hub.join(c) {
		s.logger.Warn("chat socket rejected, hub is not running")
		middleware.RecordWebSocketError("not_running")
		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseTryAgainLater, "chat is not running"),
			time.Now().Add(writeTimeout))
		conn.Close()
		return
	}

	go s.writePump(c)
	s.readPump(c)
}

// readPump turns incoming messages into chat fragments until the socket
// closes.
func (s *Server) readPump(c *client) {
	defer func() {
		s.hub.leave(c)
		c.conn.Close()
	}()

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				s.logger.Error("chat read error", "error", err)
				middleware.RecordWebSocketError("read")
			}
			return
		}
		middleware.RecordWebSocketMessage("in")

		var msg chatMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			s.logger.Debug("ignoring malformed chat message", "error", err)
			middleware.RecordWebSocketError("decode")
			continue
		}

		fragment, err := s.chatFragment(msg.Message)
		if err != nil {
			s.logger.Error("chat render failed", "error", err)
			middleware.RecordWebSocketError("render")
			continue
		}
		if fragment != nil {
			s.hub.publish(fragment)
		}
	}
}

// writePump writes queued fragments until the hub closes c.send.
func (s *Server) writePump(c *client) {
	defer c.conn.Close()

	for msg := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			s.logger.Debug("chat write failed", "error", err)
			middleware.RecordWebSocketError("write")
			// Closing the socket stops readPump, which makes the hub
			// close c.send.
			c.conn.Close()
			for range c.send {
			}
			return
		}
	}

	c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
}

// chatFragment renders text as an out of band append to #chat-messages. It
// returns nil for blank messages.
func (s *Server) chatFragment(text string) ([]byte, error) {
	html, err := renderMessage(text)
	if err != nil || html == "" {
		return nil, err
	}

	node := s.el("div",
		vdom.ID("chat-messages"),
		hx.SwapOOB(hx.SwapBeforeEnd),
		s.el("div",
			vdom.ID("msg-"+uuid.NewString()),
			vdom.Class("chat-message"),
			vdom.Raw(html),
		),
	)

	var buf bytes.Buffer
	if err := s.renderer.RenderToWriter(&buf, node); err != nil {
		return nil, err
	}
	middleware.RecordFragment("chat")
	return buf.Bytes(), nil
}
