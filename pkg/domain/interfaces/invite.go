package interfaces

import (
	"context"

	"github.com/secmon-lab/slackinvite/pkg/domain/model"
	"github.com/secmon-lab/slackinvite/pkg/domain/types"
)

// Invite sends a Slack team invite for newly created host users
type Invite interface {
	// Dispatch runs one invite attempt. The result is always non-nil; err is
	// set for failure outcomes only.
	Dispatch(ctx context.Context, userID types.UserID) (*model.InviteResult, error)

	// HandleUserCreated is the UserCreatedHandler form of Dispatch
	HandleUserCreated(ctx context.Context, userID types.UserID)
}
