package usecase

import (
	"context"
	"errors"
	"html"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slackinvite/pkg/domain/interfaces"
	"github.com/secmon-lab/slackinvite/pkg/domain/model"
	"github.com/secmon-lab/slackinvite/pkg/domain/types"
)

type Invite struct {
	loader      interfaces.ConfigLoader
	users       interfaces.UserLookup
	slackClient interfaces.SlackAdmin
}

var _ interfaces.Invite = (*Invite)(nil)

func NewInvite(loader interfaces.ConfigLoader, users interfaces.UserLookup, slackClient interfaces.SlackAdmin) *Invite {
	return &Invite{
		loader:      loader,
		users:       users,
		slackClient: slackClient,
	}
}

// Register subscribes HandleUserCreated to user-created events
func (u *Invite) Register(sub interfaces.EventSubscriber) {
	sub.OnUserCreated(u.HandleUserCreated)
}

// HandleUserCreated dispatches an invite and logs the error string of a
// failed attempt. Nothing is returned to the publisher.
func (u *Invite) HandleUserCreated(ctx context.Context, userID types.UserID) {
	result, err := u.Dispatch(ctx, userID)
	if err == nil {
		return
	}

	ctxlog.From(ctx).Error("Failed to send Slack invite",
		"error", result.Error,
		"outcome", result.Outcome,
		"userID", userID,
	)
}

// Dispatch sends at most one invite for userID. Skips are not errors.
func (u *Invite) Dispatch(ctx context.Context, userID types.UserID) (*model.InviteResult, error) {
	logger := ctxlog.From(ctx)

	result := model.NewInviteResult(userID, types.InviteOutcomeSent)
	if evCtx, ok := model.GetEventContext(ctx); ok {
		result.EventID = evCtx.EventID
	}

	// 1. No user, nothing to do
	if userID.IsZero() {
		result.Outcome = types.InviteOutcomeSkippedNoUser
		return result, nil
	}

	// 2. Load team credentials
	cfg, err := u.loader.Load(ctx)
	if err != nil {
		err = goerr.Wrap(err, "failed to load team config", goerr.V("userID", userID))
		return result.Fail(types.InviteOutcomeInvalidConfig, err.Error()), err
	}

	// 3. Not configured
	if !cfg.IsConfigured() {
		logger.Debug("Team config is empty, skipping invite", "userID", userID)
		result.Outcome = types.InviteOutcomeSkippedNotConfigured
		return result, nil
	}

	// 4. Resolve the user's email
	user, err := u.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			logger.Debug("User not found, skipping invite", "userID", userID)
			result.Outcome = types.InviteOutcomeSkippedUserNotFound
			return result, nil
		}
		err = goerr.Wrap(err, "failed to look up user", goerr.V("userID", userID))
		return result.Fail(types.InviteOutcomeLookupFailure, err.Error()), err
	}
	if !user.HasEmail() {
		logger.Debug("User has no email, skipping invite", "userID", userID)
		result.Outcome = types.InviteOutcomeSkippedNoEmail
		return result, nil
	}

	// 5-6. Send exactly one request
	resp, err := u.slackClient.InviteToTeam(ctx, cfg.Team, model.NewInviteRequest(cfg, user))

	// 7-8. Transport failure, unexpected status, or a 200 carrying an error field
	switch {
	case err != nil && goerr.HasTag(err, model.ErrTagUnexpectedStatus):
		return result.Fail(types.InviteOutcomeUnexpectedStatus, err.Error()), err
	case err != nil:
		return result.Fail(types.InviteOutcomeTransportFailure, err.Error()), err
	case resp != nil && resp.Error != "":
		msg := html.EscapeString(resp.Error)
		err := goerr.New("Slack rejected invite",
			goerr.V("error", msg),
			goerr.V("team", cfg.Team),
			goerr.V("userID", userID),
			goerr.T(model.ErrTagRejected))
		return result.Fail(types.InviteOutcomeRejected, msg), err
	}

	logger.Debug("Slack invite sent", "userID", userID, "team", cfg.Team)
	return result, nil
}
