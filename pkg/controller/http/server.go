package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slackinvite/pkg/domain/interfaces"
)

// Server represents the HTTP server receiving host platform events
type Server struct {
	*http.Server
	router chi.Router
}

// Option configures the server
type Option func(*serverOptions)

type serverOptions struct {
	webhookSecret string
	asyncDispatch bool
}

// WithWebhookSecret requires webhook requests to carry a bearer JWT signed with secret
func WithWebhookSecret(secret string) Option {
	return func(o *serverOptions) {
		o.webhookSecret = secret
	}
}

// WithAsyncDispatch acknowledges webhooks before the invite is dispatched
func WithAsyncDispatch(enabled bool) Option {
	return func(o *serverOptions) {
		o.asyncDispatch = enabled
	}
}

// NewServer creates a new HTTP server
func NewServer(
	ctx context.Context,
	addr string,
	repo interfaces.Repository,
	publisher interfaces.EventPublisher,
	opts ...Option,
) (*Server, error) {
	if repo == nil {
		return nil, goerr.New("repository is required")
	}
	if publisher == nil {
		return nil, goerr.New("event publisher is required")
	}

	var options serverOptions
	for _, opt := range opts {
		opt(&options)
	}

	router := chi.NewRouter()

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	hookHandler := NewHookHandler(repo, publisher, options.asyncDispatch)

	// Health check
	router.Get("/health", handleHealth)

	// Host platform webhook routes
	router.Route("/hooks", func(r chi.Router) {
		if options.webhookSecret != "" {
			r.Use(WebhookAuth([]byte(options.webhookSecret)))
		} else {
			ctxlog.From(ctx).Warn("Webhook secret not configured - /hooks accepts unauthenticated requests")
		}
		r.Post("/user-created", hookHandler.HandleUserCreated)
	})

	server := &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router: router,
	}

	return server, nil
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "slackinvite",
	})
}

// writeJSON writes v as a JSON response
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode response", "error", err)
	}
}

// writeError writes an error response
func writeError(w http.ResponseWriter, r *http.Request, err error, status int) {
	var message string
	if goErr := goerr.Unwrap(err); goErr != nil {
		message = goErr.Error()
	} else {
		message = err.Error()
	}

	writeJSON(w, r, status, map[string]string{
		"error": message,
	})
}
