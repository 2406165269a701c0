package config

import (
	"log/slog"

	slackSvc "github.com/secmon-lab/slackinvite/pkg/service/slack"
	"github.com/urfave/cli/v3"
)

// Slack holds outbound Slack API configuration. Credentials come from the
// team config file, not from flags.
type Slack struct {
	BaseURLFormat string
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-base-url-format",
			Usage:       "Base URL format of the team workspace; %s is replaced by the team name",
			Category:    "Slack",
			Value:       slackSvc.DefaultBaseURLFormat,
			Sources:     cli.EnvVars("SLACKINVITE_SLACK_BASE_URL_FORMAT"),
			Destination: &s.BaseURLFormat,
		},
	}
}

// Configure creates the Slack admin client
func (s *Slack) Configure() *slackSvc.Admin {
	var opts []slackSvc.Option
	if s.BaseURLFormat != "" {
		opts = append(opts, slackSvc.WithBaseURLFormat(s.BaseURLFormat))
	}
	return slackSvc.NewAdmin(opts...)
}

// LogValue returns structured log value
func (s Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("base_url_format", s.BaseURLFormat),
	)
}
