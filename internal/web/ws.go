package web

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/ItsNotGoodName/webdesk/internal/desktop"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

// ServeWS runs one desktop session for the lifetime of the websocket.
func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("Failed to upgrade websocket", "package", "web", "error", err)
		return
	}
	defer conn.Close()

	cfg, err := h.store.GetConfig()
	if err != nil {
		slog.Error("Failed to read config", "package", "web", "error", err)
		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseInternalServerErr, "config"),
			time.Now().Add(writeWait))
		return
	}

	ctx, cancel := context.WithCancel(r.Context())
	loop := desktop.NewLoop(ctx, desktop.NewModel(uuid.NewString(), cfg))
	frames, unsubscribe := loop.Subscribe(ctx)
	defer func() {
		cancel()
		unsubscribe()
	}()

	log := slog.With("package", "web", "session", loop.ID)
	log.Info("Session connected", "from", r.RemoteAddr)
	defer log.Info("Session disconnected")

	conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(loop.Hello()); err != nil {
		log.Debug("Failed to write hello", "error", err)
		return
	}

	go readPump(ctx, cancel, conn, loop, log)

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait))
			return
		case <-loop.Done():
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		case frame := <-frames:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(frame); err != nil {
				log.Debug("Failed to write frame", "error", err)
				return
			}
		}
	}
}

func readPump(ctx context.Context, cancel context.CancelFunc, conn *websocket.Conn, loop *desktop.Loop, log *slog.Logger) {
	defer cancel()

	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Debug("Failed to read message", "error", err)
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(pongWait))

		msg, err := desktop.Decode(data)
		if err != nil {
			log.Debug("Skipped message", "error", err)
			continue
		}

		if err := loop.Send(ctx, msg); err != nil {
			return
		}
	}
}
