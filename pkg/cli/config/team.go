package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slackinvite/pkg/service/team"
	"github.com/urfave/cli/v3"
)

// Team holds the location of the team credentials file
type Team struct {
	ConfigPath string
}

// Flags returns CLI flags for Team configuration
func (t *Team) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "team-config",
			Usage:       "Path to the team credentials file (default: team.json next to the executable)",
			Category:    "Team",
			Sources:     cli.EnvVars("SLACKINVITE_TEAM_CONFIG"),
			Destination: &t.ConfigPath,
		},
	}
}

// Configure creates the team config loader
func (t *Team) Configure() (*team.FileLoader, error) {
	loader, err := team.NewFileLoader(t.ConfigPath)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to init team config loader", goerr.V("path", t.ConfigPath))
	}
	return loader, nil
}

// LogValue returns structured log value
func (t Team) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("config_path", t.ConfigPath),
	)
}
