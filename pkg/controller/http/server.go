package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slackinvite/frontend"
	"github.com/secmon-lab/slackinvite/pkg/domain/interfaces"
)

// UseCases bundles the operations the form and the JSON API expose
type UseCases struct {
	Directory interfaces.Directory
	Channels  interfaces.ChannelResolver
	Inviter   interfaces.Inviter
}

// Server represents the HTTP server
type Server struct {
	*http.Server
	router chi.Router
}

// NewServer creates a new HTTP server
func NewServer(ctx context.Context, addr string, uc UseCases) (*Server, error) {
	if uc.Directory == nil || uc.Channels == nil || uc.Inviter == nil {
		return nil, goerr.New("directory, channels and inviter use cases are required")
	}

	pages, err := frontend.LoadPages()
	if err != nil {
		return nil, err
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)
	router.Use(SameOriginMiddleware)

	form := newFormHandler(uc, pages)
	api := newAPIHandler(uc)

	router.Get("/health", handleHealth)

	router.Get("/", form.handleIndex)
	router.Post("/invite", form.handleInvite)

	router.Route("/api", func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))
		r.Get("/members", api.handleListMembers)
		r.Get("/channels", api.handleListChannels)
		r.Get("/channels/resolve", api.handleResolveChannel)
		r.Post("/invitations", api.handleInvite)
	})

	ctxlog.From(ctx).Debug("HTTP routes configured", "addr", addr)

	return &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router: router,
	}, nil
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{
		"status":  "healthy",
		"service": "slackinvite",
	})
}
