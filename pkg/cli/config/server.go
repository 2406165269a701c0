package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"
)

// Server holds webhook server configuration
type Server struct {
	Addr          string
	WebhookSecret string
	AsyncDispatch bool
}

// Flags returns CLI flags for Server configuration
func (s *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Server address",
			Value:       "localhost:8080",
			Sources:     cli.EnvVars("SLACKINVITE_ADDR"),
			Destination: &s.Addr,
		},
		&cli.StringFlag{
			Name:        "webhook-secret",
			Usage:       "HS256 secret for verifying bearer JWTs on /hooks (unauthenticated if empty)",
			Sources:     cli.EnvVars("SLACKINVITE_WEBHOOK_SECRET"),
			Destination: &s.WebhookSecret,
		},
		&cli.BoolFlag{
			Name:        "async-dispatch",
			Usage:       "Acknowledge webhooks with 202 before the invite is sent",
			Sources:     cli.EnvVars("SLACKINVITE_ASYNC_DISPATCH"),
			Destination: &s.AsyncDispatch,
		},
	}
}

// LogValue returns structured log value
func (s Server) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("addr", s.Addr),
		slog.Bool("has_webhook_secret", s.WebhookSecret != ""),
		slog.Bool("async_dispatch", s.AsyncDispatch),
	)
}
