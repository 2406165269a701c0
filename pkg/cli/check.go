package cli

import (
	"context"
	"io"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slackinvite/pkg/cli/config"
	"github.com/secmon-lab/slackinvite/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdCheck(w io.Writer) *cli.Command {
	var (
		remote bool

		teamCfg  config.Team
		slackCfg config.Slack
	)

	flags := joinFlags(
		[]cli.Flag{
			&cli.BoolFlag{
				Name:        "remote",
				Usage:       "Also verify the token against the team with auth.test",
				Destination: &remote,
			},
		},
		teamCfg.Flags(),
		slackCfg.Flags(),
	)

	return &cli.Command{
		Name:  "check",
		Usage: "Validate the team config file",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			loader, err := teamCfg.Configure()
			if err != nil {
				return err
			}

			report, err := usecase.NewConfigCheck(loader, slackCfg.Configure()).Run(ctx, remote)
			if report != nil {
				if printErr := printJSON(w, report); printErr != nil {
					return printErr
				}
			}
			if err != nil {
				return goerr.Wrap(err, "team config check failed", goerr.V("path", loader.Path()))
			}
			return nil
		},
	}
}
