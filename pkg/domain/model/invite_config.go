package model

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slackinvite/pkg/domain/types"
)

// InviteConfig holds the Slack team credentials read from team.json
type InviteConfig struct {
	Team  types.TeamName `json:"team" yaml:"team"`
	Token string         `json:"token" yaml:"token"`
}

// IsConfigured reports whether both team and token are present
func (c *InviteConfig) IsConfigured() bool {
	return c != nil && c.Team != "" && c.Token != ""
}

// Validate checks that both required fields are present
func (c *InviteConfig) Validate() error {
	if c.Team == "" {
		return goerr.New("team is required",
			goerr.V("field", "team"),
			goerr.T(ErrTagInvalidConfig))
	}
	if c.Token == "" {
		return goerr.New("token is required",
			goerr.V("field", "token"),
			goerr.T(ErrTagInvalidConfig))
	}
	return nil
}

// LogValue returns structured log value without exposing the token
func (c InviteConfig) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("team", c.Team.String()),
		slog.Bool("has_token", c.Token != ""),
	)
}
