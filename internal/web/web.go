// Package web serves the browser desktop, its websocket sessions and the REST
// API.
package web

import (
	"embed"
	"net/http"

	"github.com/ItsNotGoodName/webdesk/internal/build"
	"github.com/ItsNotGoodName/webdesk/internal/config"
	"github.com/ItsNotGoodName/webdesk/pkg/chiext"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
)

//go:embed static
var static embed.FS

type Handler struct {
	store    *config.Store
	sessions *Sessions
	upgrader websocket.Upgrader
}

func NewHandler(store *config.Store, sessions *Sessions) *Handler {
	return &Handler{
		store:    store,
		sessions: sessions,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

func NewRouter(h *Handler) (http.Handler, error) {
	staticFS, err := chiext.StaticEmbedFS(chiext.StaticFSConfig{
		FileSystem: static,
		Root:       "static",
	})
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chiext.Logger())
	r.Use(middleware.Recoverer)
	r.Use(staticFS)

	r.Get("/ws", h.ServeWS)

	api := humachi.New(r, huma.DefaultConfig("webdesk", build.Current.Version))
	RegisterAPI(api, h.sessions)

	return r, nil
}
