package interfaces

//go:generate moq -out mocks/slack_mock.go -pkg mocks . SlackAdmin

import (
	"context"

	"github.com/secmon-lab/slackinvite/pkg/domain/model"
	"github.com/secmon-lab/slackinvite/pkg/domain/types"
	"github.com/slack-go/slack"
)

// SlackAdmin sends administrative requests to a Slack team
type SlackAdmin interface {
	// InviteToTeam posts a users.admin.invite request. A transport failure or a
	// non-200 status is returned as an error tagged model.ErrTagTransport or
	// model.ErrTagUnexpectedStatus. A 200 response is returned as decoded.
	InviteToTeam(ctx context.Context, team types.TeamName, req *model.InviteRequest) (*model.InviteResponse, error)

	// VerifyToken checks that the token is accepted by the team
	VerifyToken(ctx context.Context, cfg *model.InviteConfig) (*slack.AuthTestResponse, error)
}
