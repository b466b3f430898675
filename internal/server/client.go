package server

import (
	"net/http"
	"time"

	"ocean-server/internal/engine"
	"ocean-server/pkg/api"
	"ocean-server/pkg/logger"
	"ocean-server/pkg/utils"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - посредник между Websocket и GameService
type Client struct {
	ID   string
	Game *engine.GameService
	Conn *websocket.Conn
	Send chan api.StateResponse

	// done закрывается, когда writePump завершился
	done chan struct{}
}

// NewClient регистрирует подключение в хабе. Первым сообщением клиент получает текущее состояние.
func NewClient(game *engine.GameService, conn *websocket.Conn) *Client {
	c := &Client{
		ID:   utils.GenerateID(),
		Game: game,
		Conn: conn,
		Send: make(chan api.StateResponse, 256),
		done: make(chan struct{}),
	}

	// Пересылка обновлений из Hub в writePump
	go c.forward(game.Hub.Register(c.ID))

	game.Hub.SendTo(c.ID, game.Snapshot().ToResponse())

	c.log().Info("Client connected")
	return c
}

// forward перекладывает снимки из хаба в Send, пока writePump жив
func (c *Client) forward(updates <-chan api.StateResponse) {
	defer close(c.Send)
	for msg := range updates {
		select {
		case c.Send <- msg:
		case <-c.done:
			return
		}
	}
}

// readPump читает команды от клиента
func (c *Client) readPump() {
	defer func() {
		c.Game.Hub.Unregister(c.ID)
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("failed to close websocket connection")
		}
		c.log().Info("Client disconnected")
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.Log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			logger.Log.WithError(err).Warn("failed to set pong read deadline")
		}
		return nil
	})

	for {
		var cmd api.ClientCommand
		if err := c.Conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.log().WithError(err).Error("WS read error")
			}
			return
		}

		snap, result, err := c.Game.ProcessCommand(cmd)
		if err != nil {
			c.log().WithError(err).WithField("action", cmd.Action).Warn("Command rejected")
		}

		// Примененные команды уже разосланы всем. Остальным отвечаем лично текущим состоянием.
		if err != nil || !result.Applied {
			c.Game.Hub.SendTo(c.ID, snap.ToResponse())
		}
	}
}

// writePump отправляет данные клиенту + Ping
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		close(c.done)
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("failed to close websocket connection in writePump")
		}
	}()

	for {
		select {
		case message, ok := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					logger.Log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.Conn.WriteJSON(message); err != nil {
				logger.Log.WithError(err).Debug("write json message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				logger.Log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}

func (c *Client) log() *logrus.Entry {
	return logger.Log.WithFields(logrus.Fields{
		"component": "ws_client",
		"client_id": utils.ShortID(c.ID),
	})
}
