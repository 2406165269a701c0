package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slackinvite/pkg/domain/interfaces"
	"github.com/secmon-lab/slackinvite/pkg/domain/model"
)

// ConfigCheck verifies the team configuration an operator has put in place
type ConfigCheck struct {
	loader      interfaces.ConfigLoader
	slackClient interfaces.SlackAdmin
}

func NewConfigCheck(loader interfaces.ConfigLoader, slackClient interfaces.SlackAdmin) *ConfigCheck {
	return &ConfigCheck{
		loader:      loader,
		slackClient: slackClient,
	}
}

// Run loads the team config and, when remote is set, asks Slack to accept the token
func (u *ConfigCheck) Run(ctx context.Context, remote bool) (*model.ConfigReport, error) {
	cfg, err := u.loader.Load(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load team config")
	}

	report := &model.ConfigReport{
		Team:       cfg.Team,
		Configured: cfg.IsConfigured(),
	}
	if !report.Configured {
		return report, goerr.New("team config is empty or missing",
			goerr.T(model.ErrTagInvalidConfig))
	}

	if !remote {
		return report, nil
	}

	resp, err := u.slackClient.VerifyToken(ctx, cfg)
	if err != nil {
		return report, goerr.Wrap(err, "token was not accepted", goerr.V("team", cfg.Team))
	}

	report.Verified = true
	report.RemoteTeam = resp.Team
	report.RemoteTeamID = resp.TeamID
	report.RemoteURL = resp.URL
	report.RemoteUser = resp.User
	return report, nil
}
