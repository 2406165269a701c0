package config_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/slackinvite/pkg/cli/config"
	"github.com/secmon-lab/slackinvite/pkg/domain/types"
	"github.com/secmon-lab/slackinvite/pkg/repository"
	slackSvc "github.com/secmon-lab/slackinvite/pkg/service/slack"
)

func TestLoggerConfigure(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Logger{Level: "debug", Format: "json"}

	logger, err := cfg.ConfigureWriter(&buf)
	gt.NoError(t, err).Required()
	logger.Debug("visible")
	gt.S(t, buf.String()).Contains("visible")

	cfg.Format = "xml"
	_, err = cfg.ConfigureWriter(&buf)
	gt.Error(t, err)
}

func TestSecretsAreNotLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	logger.Info("config", "server", config.Server{
		Addr:          "localhost:8080",
		WebhookSecret: "super-secret",
	})

	gt.S(t, buf.String()).NotContains("super-secret")
	gt.S(t, buf.String()).Contains(`"has_webhook_secret":true`)
}

func TestTeamConfigure(t *testing.T) {
	cfg := config.Team{ConfigPath: "/etc/slackinvite/team.json"}
	loader, err := cfg.Configure()
	gt.NoError(t, err).Required()
	gt.Equal(t, loader.Path(), "/etc/slackinvite/team.json")

	cfg = config.Team{}
	loader, err = cfg.Configure()
	gt.NoError(t, err).Required()
	gt.S(t, loader.Path()).HasSuffix("team.json")
}

func TestSlackConfigure(t *testing.T) {
	cfg := config.Slack{BaseURLFormat: "http://localhost:9999/%s"}
	admin := cfg.Configure()
	gt.Equal(t, admin.InviteURL(types.TeamName("acme")), "http://localhost:9999/acme/api/users.admin.invite?t=1")

	cfg = config.Slack{}
	admin = cfg.Configure()
	gt.Equal(t, admin.TeamURL(types.TeamName("acme")), "https://acme.slack.com")
	gt.Equal(t, slackSvc.DefaultBaseURLFormat, "https://%s.slack.com")
}

func TestFirestoreFallsBackToMemory(t *testing.T) {
	ctx := ctxlog.With(context.Background(), slog.New(slog.DiscardHandler))

	var cfg config.Firestore
	gt.False(t, cfg.IsConfigured())

	repo, err := cfg.Configure(ctx)
	gt.NoError(t, err).Required()
	defer repo.Close()

	_, ok := repo.(*repository.Memory)
	gt.True(t, ok)
}
