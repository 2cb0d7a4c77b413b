// Package api provides the HTTP surface of the paraphrase service.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/helixml/rephrase"
	apimiddleware "github.com/helixml/rephrase/infrastructure/api/middleware"
	"github.com/helixml/rephrase/infrastructure/api/routes"
)

// APIServer provides the HTTP API backed by a rephrase Client.
type APIServer struct {
	client        *rephrase.Client
	allowedOrigin string
	router        chi.Router
	logger        *slog.Logger
}

// NewAPIServer creates a new APIServer wired to the given Client.
// allowedOrigin is the single origin granted by the CORS policy.
func NewAPIServer(client *rephrase.Client, allowedOrigin string) *APIServer {
	return &APIServer{
		client:        client,
		allowedOrigin: allowedOrigin,
		logger:        client.Logger(),
	}
}

// Router returns the chi router for customization before mounting routes.
// Call this first, add custom middleware with router.Use(), then call MountRoutes().
func (a *APIServer) Router() chi.Router {
	if a.router == nil {
		a.router = chi.NewRouter()
	}
	return a.router
}

// MountRoutes applies the CORS policy and registers all routes.
//
//	GET  /                 liveness
//	POST /api/paraphrase   paraphrase text
func (a *APIServer) MountRoutes() {
	router := a.Router()

	router.Use(apimiddleware.CORS(a.allowedOrigin))

	router.Get("/", routes.Health)
	router.Post("/api/paraphrase", routes.NewParaphraseRouter(a.client).Paraphrase)
}

// Handler returns the router with all routes mounted.
func (a *APIServer) Handler() http.Handler {
	if a.router == nil {
		a.MountRoutes()
	}
	return a.router
}
