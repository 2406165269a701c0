package interfaces

import (
	"context"

	"github.com/secmon-lab/slackinvite/pkg/domain/types"
)

// UserCreatedHandler reacts to a host account creation. It must not fail the
// account creation, so it has no return value.
type UserCreatedHandler func(ctx context.Context, userID types.UserID)

// EventSubscriber lets handlers attach to user-created events
type EventSubscriber interface {
	OnUserCreated(handler UserCreatedHandler)
}

// EventPublisher fires user-created events to subscribed handlers
type EventPublisher interface {
	PublishUserCreated(ctx context.Context, userID types.UserID) types.EventID
	PublishUserCreatedAsync(ctx context.Context, userID types.UserID) types.EventID
}
