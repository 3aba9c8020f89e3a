// Package handlers game.go
package handlers

import (
	"embed"
	"encoding/json"
	"html/template"
	"net/http"
	"sort"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/4cecoder/walker3d/assets"
	"github.com/4cecoder/walker3d/config"
	"github.com/4cecoder/walker3d/models"
)

//go:embed templates/game.html
var templateFS embed.FS

var gameTemplate = template.Must(template.ParseFS(templateFS, "templates/game.html"))

type Handler struct {
	cfg      config.Config
	log      *zap.Logger
	loader   assets.Loader
	sessions *Registry
	queue    *MessageQueue
	upgrader websocket.Upgrader
}

func New(cfg config.Config, log *zap.Logger, loader assets.Loader) *Handler {
	if loader == nil {
		clips := make([]string, 0, len(cfg.Clips))
		for _, c := range cfg.Clips {
			clips = append(clips, c)
		}
		sort.Strings(clips)
		loader = &assets.GLTFLoader{URLPrefix: cfg.ModelURL, Clips: clips, Log: log}
	}
	return &Handler{
		cfg:      cfg,
		log:      log,
		loader:   loader,
		sessions: NewRegistry(),
		queue:    NewMessageQueue(backlogLimit),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The page is served from this host; any origin is accepted for local play.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (h *Handler) Sessions() *Registry {
	return h.sessions
}

// Routes builds the router. static, when non-empty, is served under /static/.
func (h *Handler) Routes(static string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", h.HandleRoot)
	r.Get("/ws", h.HandleWebSocket)
	r.Get("/api/world", h.HandleWorld)
	r.Get("/healthz", h.HandleHealth)

	if static != "" {
		fileServer := http.FileServer(http.Dir(static))
		r.Handle("/static/*", http.StripPrefix("/static/", fileServer))
	}
	return r
}

func (h *Handler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	data := struct {
		WSPath    string
		WorldPath string
	}{"/ws", "/api/world"}
	if err := gameTemplate.Execute(w, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) WorldInfo() models.WorldInfo {
	g := h.cfg.Game
	return models.WorldInfo{
		Building:     g.Building,
		Spawn:        models.Point{X: g.Spawn.X(), Y: 0, Z: g.Spawn.Z()},
		CameraOffset: models.Point{X: g.CameraOffset.X(), Y: g.CameraOffset.Y(), Z: g.CameraOffset.Z()},
		TickHz:       h.cfg.TickHz,
	}
}

func (h *Handler) HandleWorld(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.WorldInfo())
}

func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{
		"status":   "ok",
		"sessions": h.sessions.Count(),
	})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
