package server

import (
	"net/http"
	"time"

	"github.com/nancyzera/jurassic-game/internal/engine"
	"github.com/nancyzera/jurassic-game/pkg/api"
	"github.com/nancyzera/jurassic-game/pkg/logger"
	"github.com/nancyzera/jurassic-game/pkg/utils"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1024
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client connects one websocket to one session.
type Client struct {
	Game      *engine.GameService
	Conn      *websocket.Conn
	SessionID string

	updates <-chan api.ServerResponse
	// errors carries rejection frames from readPump; only writePump writes.
	errors chan api.ServerResponse
	log    *logrus.Entry
}

func NewClient(game *engine.GameService, conn *websocket.Conn) (*Client, error) {
	id, updates, err := game.CreateSession()
	if err != nil {
		return nil, err
	}
	c := &Client{
		Game:      game,
		Conn:      conn,
		SessionID: id,
		updates:   updates,
		errors:    make(chan api.ServerResponse, 16),
		log:       logger.Component("client").WithField("session_id", id),
	}
	c.log.WithField("remote", conn.RemoteAddr().String()).Info("Client connected")
	return c, nil
}

// readPump decodes commands until the connection drops, then closes the
// session. Closing the session closes updates, which stops writePump.
func (c *Client) readPump() {
	defer func() {
		c.Game.CloseSession(c.SessionID)
		if err := c.Conn.Close(); err != nil {
			c.log.WithError(err).Debug("failed to close websocket connection")
		}
		c.log.Info("Client disconnected")
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.log.WithError(err).Error("WS error")
			}
			return
		}

		cmd, err := api.DecodeCommand(raw)
		if err != nil {
			c.reject(err)
			continue
		}
		if cmd.Token == "" {
			cmd.Token = c.SessionID
		}
		if err := c.Game.ProcessCommand(c.SessionID, cmd); err != nil {
			c.reject(err)
		}
	}
}

func (c *Client) reject(err error) {
	c.log.WithError(err).Debug("Command rejected")
	frame := api.ServerResponse{
		Type:      "ERROR",
		SessionID: c.SessionID,
		Logs: []api.LogEntry{{
			ID:        utils.GenerateID(),
			Text:      err.Error(),
			Type:      "ERROR",
			Timestamp: time.Now().UnixMilli(),
		}},
	}
	select {
	case c.errors <- frame:
	default:
	}
}

// writePump sends snapshots and rejections, plus pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			c.log.WithError(err).Debug("failed to close websocket connection in writePump")
		}
	}()

	for {
		select {
		case message, ok := <-c.updates:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteJSON(message); err != nil {
				c.log.WithError(err).Debug("write json message failed")
				return
			}

		case message := <-c.errors:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteJSON(message); err != nil {
				c.log.WithError(err).Debug("write error frame failed")
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
