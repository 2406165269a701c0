package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// tokenSkew tolerates clock drift between the host platform and this service
const tokenSkew = 30 * time.Second

// WebhookAuth requires an "Authorization: Bearer <JWT>" header whose token is
// signed HS256 with secret and is currently valid
func WebhookAuth(secret []byte) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || raw == "" {
				writeError(w, r, goerr.New("missing bearer token"), http.StatusUnauthorized)
				return
			}

			token, err := jwt.ParseString(raw,
				jwt.WithKey(jwa.HS256, secret),
				jwt.WithValidate(true),
				jwt.WithAcceptableSkew(tokenSkew),
			)
			if err != nil {
				ctxlog.From(r.Context()).Debug("Webhook token rejected", "error", err)
				writeError(w, r, goerr.New("invalid bearer token"), http.StatusUnauthorized)
				return
			}

			ctxlog.From(r.Context()).Debug("Authenticated webhook",
				"issuer", token.Issuer(),
				"subject", token.Subject(),
			)

			next.ServeHTTP(w, r)
		})
	}
}

// LoggingMiddleware creates a chi-compatible logging middleware
func LoggingMiddleware(ctx context.Context) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Embed logger from the initial context into request context
			logger := ctxlog.From(ctx).With("requestID", middleware.GetReqID(r.Context()))
			r = r.WithContext(ctxlog.With(r.Context(), logger))

			start := time.Now()

			// Wrap response writer to capture status
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("HTTP request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
			)
		})
	}
}
