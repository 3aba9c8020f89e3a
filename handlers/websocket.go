// Package handlers websocket.go
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/4cecoder/walker3d/assets"
	"github.com/4cecoder/walker3d/game"
	"github.com/4cecoder/walker3d/models"
)

// HandleWebSocket upgrades the request and runs a play session until the
// connection closes. The request goroutine owns the session: key events,
// the model load result and frame ticks are all handled here, one at a time.
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	id := uuid.New().String()
	log := h.log.With(zap.String("session", id))
	client := NewClient(conn, id, h.queue, log)
	session := game.NewSession(id, h.cfg.Game, h.log)

	h.sessions.register(client)
	defer h.sessions.unregister(client)
	log.Info("session started", zap.String("remote", r.RemoteAddr))

	go client.ReadPump()
	go client.WritePump()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h.run(ctx, client, session, log)
	client.Close()
	log.Info("session ended", zap.Int("ticks", session.Tick()), zap.Int("landings", session.Landings))
}

func (h *Handler) run(ctx context.Context, client *Client, session *game.Session, log *zap.Logger) {
	ticker := time.NewTicker(time.Second / time.Duration(h.cfg.TickHz))
	defer ticker.Stop()

	loaded := assets.LoadAsync(ctx, h.loader, h.cfg.ModelPath, func(done, total int64) {
		log.Debug("loading model", zap.Int64("loaded", done), zap.Int64("total", total))
	})

	for {
		select {
		case <-client.Done():
			return
		case res := <-loaded:
			loaded = nil
			model := res.OrPlaceholder(log)
			session.Spawn()
			err := client.SendInstruction(models.RenderInstruction{
				Type:    models.TypeLoaded,
				Payload: models.LoadedState{Model: model, Clips: h.cfg.Clips},
			}, true)
			if err != nil {
				return
			}
		case ev := <-client.Inbox:
			session.SetKey(ev.Key, ev.Down)
		case <-ticker.C:
			if err := session.Frame(client); err != nil {
				log.Debug("frame not delivered", zap.Error(err))
				return
			}
		}
	}
}
