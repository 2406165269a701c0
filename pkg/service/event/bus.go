package event

import (
	"context"
	"runtime/debug"
	"sync"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/slackinvite/pkg/domain/interfaces"
	"github.com/secmon-lab/slackinvite/pkg/domain/model"
	"github.com/secmon-lab/slackinvite/pkg/domain/types"
	"github.com/secmon-lab/slackinvite/pkg/utils/async"
)

// Bus delivers user-created events to subscribed handlers in registration order
type Bus struct {
	mu       sync.RWMutex
	handlers []interfaces.UserCreatedHandler
	source   string
}

var (
	_ interfaces.EventSubscriber = (*Bus)(nil)
	_ interfaces.EventPublisher  = (*Bus)(nil)
)

// NewBus creates a new Bus. source labels where events come from in logs.
func NewBus(source string) *Bus {
	return &Bus{source: source}
}

// OnUserCreated subscribes handler to user-created events
func (b *Bus) OnUserCreated(handler interfaces.UserCreatedHandler) {
	if handler == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, handler)
}

// PublishUserCreated runs every handler inline and returns once all are done
func (b *Bus) PublishUserCreated(ctx context.Context, userID types.UserID) types.EventID {
	ctx, evCtx := b.newEventContext(ctx, userID)
	b.deliver(ctx, userID)
	return evCtx.EventID
}

// PublishUserCreatedAsync returns immediately and runs the handlers in background
func (b *Bus) PublishUserCreatedAsync(ctx context.Context, userID types.UserID) types.EventID {
	ctx, evCtx := b.newEventContext(ctx, userID)
	async.Dispatch(ctx, func(ctx context.Context) error {
		b.deliver(ctx, userID)
		return nil
	})
	return evCtx.EventID
}

func (b *Bus) newEventContext(ctx context.Context, userID types.UserID) (context.Context, *model.EventContext) {
	evCtx := model.NewEventContext(userID, b.source)
	logger := ctxlog.From(ctx).With("eventID", evCtx.EventID, "userID", userID)
	ctx = ctxlog.With(ctx, logger)
	return model.WithEventContext(ctx, evCtx), evCtx
}

func (b *Bus) deliver(ctx context.Context, userID types.UserID) {
	b.mu.RLock()
	handlers := make([]interfaces.UserCreatedHandler, len(b.handlers))
	copy(handlers, b.handlers)
	b.mu.RUnlock()

	ctxlog.From(ctx).Debug("Delivering user created event", "handlers", len(handlers))

	for i, handler := range handlers {
		invoke(ctx, i, handler, userID)
	}
}

// invoke isolates a handler so a panic does not stop the remaining handlers
func invoke(ctx context.Context, index int, handler interfaces.UserCreatedHandler, userID types.UserID) {
	defer func() {
		if r := recover(); r != nil {
			ctxlog.From(ctx).Error("Panic in user created handler",
				"handler", index,
				"recover", r,
				"stack", string(debug.Stack()),
			)
		}
	}()

	handler(ctx, userID)
}
