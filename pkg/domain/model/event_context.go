package model

import (
	"context"

	"github.com/secmon-lab/slackinvite/pkg/domain/types"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	eventContextKey contextKey = "eventContext"
)

// EventContext describes the user-created event being handled. It is
// preserved across async boundaries.
type EventContext struct {
	EventID types.EventID `json:"event_id,omitempty"`
	UserID  types.UserID  `json:"user_id,omitempty"`
	Source  string        `json:"source,omitempty"`
}

// NewEventContext creates a new EventContext with a fresh event ID
func NewEventContext(userID types.UserID, source string) *EventContext {
	return &EventContext{
		EventID: types.NewEventID(),
		UserID:  userID,
		Source:  source,
	}
}

// WithEventContext adds EventContext to the context
func WithEventContext(ctx context.Context, evCtx *EventContext) context.Context {
	if evCtx == nil {
		return ctx
	}
	return context.WithValue(ctx, eventContextKey, evCtx)
}

// GetEventContext retrieves EventContext from the context
func GetEventContext(ctx context.Context) (*EventContext, bool) {
	evCtx, ok := ctx.Value(eventContextKey).(*EventContext)
	return evCtx, ok
}

// Clone creates a copy of the EventContext
func (e *EventContext) Clone() *EventContext {
	if e == nil {
		return nil
	}
	c := *e
	return &c
}
