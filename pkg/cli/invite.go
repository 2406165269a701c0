package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slackinvite/pkg/cli/config"
	"github.com/secmon-lab/slackinvite/pkg/domain/interfaces"
	"github.com/secmon-lab/slackinvite/pkg/domain/model"
	"github.com/secmon-lab/slackinvite/pkg/domain/types"
	"github.com/secmon-lab/slackinvite/pkg/repository"
	"github.com/secmon-lab/slackinvite/pkg/service/event"
	"github.com/secmon-lab/slackinvite/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdInvite(w io.Writer) *cli.Command {
	var (
		userID    int64
		email     string
		firstName string

		teamCfg      config.Team
		slackCfg     config.Slack
		firestoreCfg config.Firestore
	)

	flags := joinFlags(
		[]cli.Flag{
			&cli.Int64Flag{
				Name:        "user-id",
				Usage:       "ID of the created user",
				Required:    true,
				Destination: &userID,
			},
			&cli.StringFlag{
				Name:        "email",
				Usage:       "Email of the user; seeds an in-memory directory instead of Firestore",
				Destination: &email,
			},
			&cli.StringFlag{
				Name:        "first-name",
				Usage:       "First name of the user (used with --email)",
				Destination: &firstName,
			},
		},
		teamCfg.Flags(),
		slackCfg.Flags(),
		firestoreCfg.Flags(),
	)

	return &cli.Command{
		Name:  "invite",
		Usage: "Send the Slack invite for one created user and print the outcome",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			loader, err := teamCfg.Configure()
			if err != nil {
				return err
			}

			var repo interfaces.Repository
			if email != "" {
				repo = repository.NewMemory()
				if err := repo.SaveUser(ctx, model.NewUser(types.UserID(userID), email, firstName)); err != nil {
					return goerr.Wrap(err, "failed to seed user")
				}
			} else {
				repo, err = firestoreCfg.Configure(ctx)
				if err != nil {
					return err
				}
			}
			defer repo.Close()

			var inviteUC interfaces.Invite = usecase.NewInvite(loader, repo, slackCfg.Configure())

			// Run through the bus so the result carries an event ID like a webhook delivery
			var (
				result    *model.InviteResult
				inviteErr error
			)
			bus := event.NewBus("cli")
			bus.OnUserCreated(func(ctx context.Context, id types.UserID) {
				result, inviteErr = inviteUC.Dispatch(ctx, id)
			})
			bus.PublishUserCreated(ctx, types.UserID(userID))

			if result == nil {
				return goerr.New("invite was not dispatched", goerr.V("userID", userID))
			}

			logger.Debug("Invite dispatched", slog.Any("outcome", result.Outcome))
			if err := printJSON(w, result); err != nil {
				return err
			}

			if inviteErr != nil {
				return goerr.Wrap(inviteErr, "invite failed", goerr.V("outcome", result.Outcome))
			}
			return nil
		},
	}
}
